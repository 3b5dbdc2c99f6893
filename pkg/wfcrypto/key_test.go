package wfcrypto

import "testing"

func TestPresharedEncryptionKeyRequiresContext(t *testing.T) {
	key := NewPresharedEncryptionKey([]byte("a shared secret"))
	if key.Method() != Aes256CtrPsk {
		t.Errorf("Method() = %v, want Aes256CtrPsk", key.Method())
	}
	if _, err := key.Cipher(); err != ErrNoContext {
		t.Errorf("Cipher() before SetContext error = %v, want ErrNoContext", err)
	}

	if err := key.SetContext([]byte("0000000000000001")); err != nil {
		t.Fatalf("SetContext() error = %v", err)
	}
	if _, err := key.Cipher(); err != nil {
		t.Errorf("Cipher() after SetContext error = %v", err)
	}
}

func TestECDHEncryptionKeyAgreement(t *testing.T) {
	alice, err := GenerateECDHKeyPair()
	if err != nil {
		t.Fatalf("GenerateECDHKeyPair() error = %v", err)
	}
	bob, err := GenerateECDHKeyPair()
	if err != nil {
		t.Fatalf("GenerateECDHKeyPair() error = %v", err)
	}

	keyA, err := NewECDHEncryptionKey(alice, bob.PublicKey())
	if err != nil {
		t.Fatalf("NewECDHEncryptionKey(alice) error = %v", err)
	}
	keyB, err := NewECDHEncryptionKey(bob, alice.PublicKey())
	if err != nil {
		t.Fatalf("NewECDHEncryptionKey(bob) error = %v", err)
	}

	originator := []byte("0000000000000001")
	if err := keyA.SetContext(originator); err != nil {
		t.Fatalf("keyA.SetContext() error = %v", err)
	}
	if err := keyB.SetContext(originator); err != nil {
		t.Fatalf("keyB.SetContext() error = %v", err)
	}

	if string(keyA.derived) != string(keyB.derived) {
		t.Errorf("derived keys differ: %x vs %x", keyA.derived, keyB.derived)
	}
}
