package schema

import "errors"

var (
	ErrNotRecord       = errors.New("not a record type")
	ErrMemberCollision = errors.New("member name collision")
	ErrDuplicateName   = errors.New("duplicate discriminator name")
	ErrUnknownName     = errors.New("unknown discriminator name")
	ErrNoDeclaredType  = errors.New("no declared type")
	ErrBadBinding      = errors.New("bad interface binding")
	ErrBadTag          = errors.New("bad struct tag")
)
