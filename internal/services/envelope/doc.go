// Package envelope turns signal payloads into transport envelopes.
//
// A Sealer is bound to one configuration: it derives the AES key from
// apiKey (salt) and apiSecret (passphrase) once, then for each payload
// serialises it to JSON, encrypts it with a fresh IV and wipes the
// intermediate plaintext.
package envelope
