package gmail

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"google.golang.org/api/gmail/v1"
)

// downloadHostMarker identifies hrefs that point at a hosted notebook
// export rather than at marketing content in the same email.
const downloadHostMarker = "kindle-content-requests"

// wrappedURLParam extracts the target URL from Amazon's click-tracking
// redirect links.
var wrappedURLParam = regexp.MustCompile(`U=([^&]+)`)

// subjectHeader returns the Subject header of a message, or "Unknown"
// when the header is missing.
func subjectHeader(msg *gmail.Message) string {
	if msg.Payload == nil {
		return "Unknown"
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == "Subject" {
			return h.Value
		}
	}
	return "Unknown"
}

// pdfAttachment returns the part describing the first PDF attachment,
// or nil when the message carries none.
func pdfAttachment(msg *gmail.Message) *gmail.MessagePart {
	if msg.Payload == nil {
		return nil
	}
	for _, part := range msg.Payload.Parts {
		if strings.HasSuffix(part.Filename, ".pdf") && part.Body != nil {
			return part
		}
	}
	return nil
}

// htmlBody returns the decoded HTML body of a message. Multipart
// messages yield the first text/html part; single-part messages yield
// the payload body itself.
func htmlBody(msg *gmail.Message) string {
	if msg.Payload == nil {
		return ""
	}
	for _, part := range msg.Payload.Parts {
		if part.MimeType == "text/html" && part.Body != nil && part.Body.Data != "" {
			decoded, err := decodeBase64URL(part.Body.Data)
			if err != nil {
				return ""
			}
			return string(decoded)
		}
	}
	if msg.Payload.Body != nil && msg.Payload.Body.Data != "" {
		decoded, err := decodeBase64URL(msg.Payload.Body.Data)
		if err != nil {
			return ""
		}
		return string(decoded)
	}
	return ""
}

// ExtractDownloadLinks pulls the export download URLs out of an email
// body. Quoted-printable artifacts are stripped from each href, and
// click-tracking redirects are unwrapped to the underlying URL.
func ExtractDownloadLinks(htmlContent string) []string {
	var links []string

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tok := z.Token()
		if tok.Data != "a" {
			continue
		}
		for _, attr := range tok.Attr {
			if attr.Key != "href" || !strings.Contains(attr.Val, downloadHostMarker) {
				continue
			}
			clean := strings.ReplaceAll(attr.Val, "=3D", "=")
			clean = strings.ReplaceAll(clean, "=\n", "")
			links = append(links, unwrapRedirect(clean))
		}
	}

	return links
}

// unwrapRedirect resolves a tracking redirect to its target URL, or
// returns the link unchanged when it is not a redirect.
func unwrapRedirect(link string) string {
	m := wrappedURLParam.FindStringSubmatch(link)
	if m == nil {
		return link
	}
	target, err := url.QueryUnescape(m[1])
	if err != nil {
		return link
	}
	return target
}

// decodeBase64URL decodes Gmail body data, which is base64url encoded
// and usually unpadded.
func decodeBase64URL(data string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	return base64.URLEncoding.DecodeString(data)
}
