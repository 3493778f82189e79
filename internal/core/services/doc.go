// Package services contains the core orchestration logic that drives
// export messages through text recovery, parsing and persistence.
package services
