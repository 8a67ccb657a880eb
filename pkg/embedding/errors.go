package embedding

import "errors"

var (
	// ErrEmptyInput rejects an embed call whose text is empty after
	// trimming.
	ErrEmptyInput = errors.New("embedding: input text is empty")

	// ErrNoValidInput rejects a batch in which every entry is blank.
	ErrNoValidInput = errors.New("embedding: no valid input in batch")

	// ErrProviderContract marks a provider response that violates the
	// embedding contract: wrong vector count or wrong dimension.
	ErrProviderContract = errors.New("embedding: provider violated response contract")

	// ErrDimensionMismatch rejects a similarity computation over vectors of
	// different lengths.
	ErrDimensionMismatch = errors.New("embedding: vector dimensions do not match")
)
