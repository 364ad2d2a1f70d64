package dexgen

import "github.com/inovacc/dexr/internal/pokeapi"

// SkipReason categorizes why an evolution chain was skipped
type SkipReason int

const (
	SkipReasonNone SkipReason = iota
	SkipReasonNotFound
	SkipReasonNetwork
	SkipReasonDataShape
	SkipReasonOther
)

func (r SkipReason) String() string {
	switch r {
	case SkipReasonNone:
		return ""
	case SkipReasonNotFound:
		return "not found"
	case SkipReasonNetwork:
		return "network failure"
	case SkipReasonDataShape:
		return "unexpected payload"
	case SkipReasonOther:
		return "error"
	}

	return ""
}

func skipReasonForError(err error) SkipReason {
	switch {
	case err == nil:
		return SkipReasonNone
	case pokeapi.IsNotFound(err):
		return SkipReasonNotFound
	case pokeapi.IsDataShape(err):
		return SkipReasonDataShape
	case pokeapi.IsNetwork(err):
		return SkipReasonNetwork
	}

	return SkipReasonOther
}
