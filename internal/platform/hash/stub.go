package hash

type StubHasher struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(plain, hashed string) (bool, error)
}

var _ Hasher = StubHasher{}

func (h StubHasher) Hash(plain string) (string, error) {
	if h.HashFunc == nil {
		return "hashed:" + plain, nil
	}
	return h.HashFunc(plain)
}

func (h StubHasher) Verify(plain, hashed string) (bool, error) {
	if h.VerifyFunc == nil {
		return hashed == "hashed:"+plain, nil
	}
	return h.VerifyFunc(plain, hashed)
}
