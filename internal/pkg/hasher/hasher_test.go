package hasher

import "testing"

func TestDigest_KnownVectors(t *testing.T) {
	// Digests must stay byte-for-byte compatible with records already in the
	// store; these vectors pin the algorithm down.
	cases := map[string]string{
		"admin":    "x61Ey612Kl2gpFL56FT9weDnpSo4AV8j8+qx2AuTHdRyY036xxzTTrw10Wq3+4qQyB+XURPWx1ONxp3Y3pB37A==",
		"password": "sQnzu7wkTrgkQZF+0G1hi5AI3Qmzvv0bXgc5THBqi7mAsdd4Xll27ASbRt9fEyavWi6m0QP9B8lThf+rDKy8hg==",
	}
	for plaintext, want := range cases {
		if got := Digest(plaintext); got != want {
			t.Fatalf("Digest(%q) = %q, want %q", plaintext, got, want)
		}
	}
}

func TestDigest_Deterministic(t *testing.T) {
	if Digest("s3cret") != Digest("s3cret") {
		t.Fatalf("equal inputs must produce equal digests")
	}
}

func TestDigest_SensitiveToInput(t *testing.T) {
	if Digest("s3cret") == Digest("s3creT") {
		t.Fatalf("different inputs produced the same digest")
	}
	if Digest("") == Digest(" ") {
		t.Fatalf("empty and whitespace inputs produced the same digest")
	}
}
