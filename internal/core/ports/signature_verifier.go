package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/kernel"
)

// SignatureVerifier checks that a signature reference points at a file the
// external file service actually stores. Storing the file is not our concern.
type SignatureVerifier interface {
	// Verify returns *errs.ValueIsInvalidError for an unknown signature and a
	// plain error when the file service could not be reached.
	Verify(ctx context.Context, signatureID kernel.UUID) error
}
