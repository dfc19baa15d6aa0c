package types

// SymmetricKey is the 128-bit AES key derived from apiKey/apiSecret.
type SymmetricKey [16]byte

// Envelope is the transport-safe form of one encrypted SignalPayload.
//
// IV doubles as the tenant-id request header; the backend locates the
// decryption IV through that header, not through the body.
type Envelope struct {
	EncodedData string `json:"encodedData" yaml:"encodedData"` // base64 ciphertext
	IV          string `json:"iv" yaml:"iv"`                   // 32 lowercase hex chars
}
