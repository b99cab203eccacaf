package encrypter

import "crypto/cipher"

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32
)

type implEncrypter struct {
	gcm cipher.AEAD
}
