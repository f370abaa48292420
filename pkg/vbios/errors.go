package vbios

import "errors"

var (
	ErrHeaderNotFound = errors.New("ROM header not found")
	ErrFooterNotFound = errors.New("ROM footer not found")
	ErrMalformedHex   = errors.New("malformed hex content")
	ErrSanityCheck    = errors.New("sanity check failed")
	ErrOffsetsNotSet  = errors.New("offsets not detected")
)
