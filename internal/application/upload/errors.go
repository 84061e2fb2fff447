package upload

import "errors"

var ErrMissingTicketID = errors.New("missing ticket id")
