package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for rendering operations
var (
	ErrLengthMismatch    = goerr.New("labels and values differ in length")
	ErrNegativeValue     = goerr.New("value must not be negative")
	ErrDuplicateCategory = goerr.New("duplicate category")
	ErrEmptyDataset      = goerr.New("dataset is empty")
	ErrInvalidSurface    = goerr.New("surface is invalid or absent")
	ErrSurfaceNotFound   = goerr.New("surface not found")
	ErrUnsupportedFormat = goerr.New("unsupported output format")
	ErrNothingToDraw     = goerr.New("chart has nothing to draw")
)
