package gmail

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mindgarden-labs/scribesync/internal/core/domain"
	"github.com/mindgarden-labs/scribesync/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.MailSource = (*Connector)(nil)

// Connector finds and fetches notebook export emails through the Gmail API.
type Connector struct {
	svc     *gmail.Service
	cfg     *Config
	limiter *RateLimiter
}

// New creates a Gmail connector using the provided TokenSource.
func New(ctx context.Context, ts oauth2.TokenSource, cfg *Config) (*Connector, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalise()

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	return &Connector{
		svc:     svc,
		cfg:     cfg,
		limiter: NewRateLimiter(),
	}, nil
}

// Search lists messages matching the configured query, newest first.
func (c *Connector) Search(ctx context.Context) ([]domain.MessageRef, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.svc.Users.Messages.List("me").
		Q(c.cfg.Query).
		MaxResults(c.cfg.MaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, c.wrapAPIError("list messages", err)
	}

	refs := make([]domain.MessageRef, 0, len(res.Messages))
	for _, msg := range res.Messages {
		refs = append(refs, domain.MessageRef{ID: msg.Id})
	}
	return refs, nil
}

// Fetch retrieves a message and classifies its export payload. A PDF
// attachment wins over download links; a message with neither yields an
// export of kind ExportNone.
func (c *Connector) Fetch(ctx context.Context, id string) (*domain.Export, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	msg, err := c.svc.Users.Messages.Get("me", id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, c.wrapAPIError("get message", err)
	}

	subject := subjectHeader(msg)

	if part := pdfAttachment(msg); part != nil {
		data, attErr := c.fetchAttachment(ctx, id, part.Body.AttachmentId)
		if attErr != nil {
			return nil, attErr
		}
		return &domain.Export{
			Kind:     domain.ExportPDF,
			Data:     data,
			Filename: part.Filename,
			Subject:  subject,
		}, nil
	}

	if links := ExtractDownloadLinks(htmlBody(msg)); len(links) > 0 {
		return &domain.Export{
			Kind:    domain.ExportLinks,
			Links:   links,
			Subject: subject,
		}, nil
	}

	return &domain.Export{Kind: domain.ExportNone, Subject: subject}, nil
}

// fetchAttachment downloads and decodes an attachment body.
func (c *Connector) fetchAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	att, err := c.svc.Users.Messages.Attachments.Get("me", messageID, attachmentID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, c.wrapAPIError("get attachment", err)
	}

	data, err := decodeBase64URL(att.Data)
	if err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return data, nil
}

// wrapAPIError maps Gmail API failures onto domain errors and records
// quota backoff when the API signals it.
func (c *Connector) wrapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			c.limiter.RecordRateLimitError(0)
			return fmt.Errorf("%s: %w", op, domain.ErrRateLimited)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w", op, domain.ErrAuthRequired)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
