package wfcrypto

import "testing"

func TestECDHNegotiationAgrees(t *testing.T) {
	alice, err := GenerateECDHKeyPair()
	if err != nil {
		t.Fatalf("GenerateECDHKeyPair() error = %v", err)
	}
	bob, err := GenerateECDHKeyPair()
	if err != nil {
		t.Fatalf("GenerateECDHKeyPair() error = %v", err)
	}

	secretA, err := alice.Negotiate(bob.PublicKey())
	if err != nil {
		t.Fatalf("alice.Negotiate() error = %v", err)
	}
	secretB, err := bob.Negotiate(alice.PublicKey())
	if err != nil {
		t.Fatalf("bob.Negotiate() error = %v", err)
	}

	if string(secretA) != string(secretB) {
		t.Errorf("negotiated secrets differ: %x vs %x", secretA, secretB)
	}
}

func TestECDHKeyPairFromPrivateKeyRejectsBadSize(t *testing.T) {
	if _, err := ECDHKeyPairFromPrivateKey(make([]byte, 16)); err != ErrInvalidPrivateKeySize {
		t.Errorf("error = %v, want ErrInvalidPrivateKeySize", err)
	}
}

func TestNegotiateRejectsBadPublicKeySize(t *testing.T) {
	kp, err := GenerateECDHKeyPair()
	if err != nil {
		t.Fatalf("GenerateECDHKeyPair() error = %v", err)
	}
	if _, err := kp.Negotiate(make([]byte, 16)); err != ErrInvalidPublicKeySize {
		t.Errorf("error = %v, want ErrInvalidPublicKeySize", err)
	}
}
