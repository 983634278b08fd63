package validation

type StubValidator struct {
	ValidateStructFunc func(s any) map[string]string
}

var _ Validator = (*StubValidator)(nil)

func (va *StubValidator) ValidateStruct(s any) map[string]string {
	if va.ValidateStructFunc == nil {
		return nil
	}
	return va.ValidateStructFunc(s)
}
