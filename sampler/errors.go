package sampler

import "errors"

// Sentinel errors for the sampler package.
var (
	// ErrPoolTooSmall indicates k > poolSize at Sample time.
	ErrPoolTooSmall = errors.New("sampler: pool smaller than requested sample size")

	// ErrNotInitialized indicates Sample was called before Initialize.
	ErrNotInitialized = errors.New("sampler: Initialize must be called before Sample")
)
