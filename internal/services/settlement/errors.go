package settlement

import "errors"

// ErrUnknownMerchant marks a referential violation: a SUCCESS payment whose
// merchant is absent from the merchant population. Never dropped silently.
var ErrUnknownMerchant = errors.New("payment references unknown merchant")
