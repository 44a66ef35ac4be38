package config_test

import (
	"os"
	"testing"

	"github.com/saulo-duarte/skillverse-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKeyPanics", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", "short")
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should panic on a short key")
			}
		}()
		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", testKey)
		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "user-1|42|5f1c"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("got %q, want %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("two encryptions of the same text should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("got %q, want empty", decrypted)
		}
	})

	t.Run("Tampered", func(t *testing.T) {
		ciphertext, err := config.Encrypt("payload")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		b := []byte(ciphertext)
		if b[20] == 'A' {
			b[20] = 'B'
		} else {
			b[20] = 'A'
		}
		if _, err := config.Decrypt(string(b)); err == nil {
			t.Errorf("Decrypt should fail on tampered input")
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := config.Decrypt("!!not-base64!!"); err != config.ErrMalformedCiphertext {
			t.Errorf("got %v, want ErrMalformedCiphertext", err)
		}
		if _, err := config.Decrypt("AAAA"); err != config.ErrMalformedCiphertext {
			t.Errorf("got %v, want ErrMalformedCiphertext for short input", err)
		}
	})
}
