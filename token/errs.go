package token

import "errors"

var (
	ErrBadUTF8            = errors.New("bad utf8")
	ErrUnterminated       = errors.New("unterminated string")
	ErrUnterminatedMulti  = errors.New("unterminated multiline string")
	ErrUnterminatedBlock  = errors.New("unterminated block comment")
	ErrBadEscape          = errors.New("bad escape")
	ErrBadUnicode         = errors.New("bad unicode escape")
	ErrLoneSurrogate      = errors.New("lone surrogate")
	ErrNumber             = errors.New("number")
	ErrNumberLeadingZero  = errors.New("leading zero")
)
