package accounts

import "testing"

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher()
	digest, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := h.Verify("correct horse battery staple", digest)
	if err != nil {
		t.Fatal(err)
	} else if !ok {
		t.Fatal("digest does not verify against its own secret")
	}
}

func TestHasherMismatchIsNotAnError(t *testing.T) {
	h := NewHasher()
	digest, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := h.Verify("pw2", digest)
	if err != nil {
		t.Fatal("a mismatch must be a negative result, not an error:", err)
	} else if ok {
		t.Fatal("wrong secret verified against digest")
	}
}

func TestHasherMalformedDigest(t *testing.T) {
	h := NewHasher()
	ok, err := h.Verify("pw1", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatal("malformed digest must surface an error")
	} else if ok {
		t.Fatal("malformed digest cannot verify")
	}
}

func TestHasherSaltsPerCall(t *testing.T) {
	h := NewHasher()
	first, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("two digests of the same secret must differ, salt is per call")
	}
}
