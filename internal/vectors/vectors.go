// Package vectors defines the JSON test-vector records exchanged by the
// command-line tools.
package vectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Record is one keypair-and-signature vector. All byte fields are lowercase
// hex.
type Record struct {
	Seed      string `json:"seed"`
	Message   string `json:"msg"`
	PublicKey string `json:"pk"`
	SecretKey string `json:"sk"`
	Signature string `json:"sig"`
}

// File is the on-disk vector set.
type File struct {
	Records []Record `json:"records"`
}

// NewRecord hex-encodes the raw fields of one vector.
func NewRecord(seed, msg, pk, sk, sig []byte) Record {
	return Record{
		Seed:      hex.EncodeToString(seed),
		Message:   hex.EncodeToString(msg),
		PublicKey: hex.EncodeToString(pk),
		SecretKey: hex.EncodeToString(sk),
		Signature: hex.EncodeToString(sig),
	}
}

// Bytes decodes the raw fields of r.
func (r Record) Bytes() (seed, msg, pk, sk, sig []byte, err error) {
	fields := []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"seed", r.Seed, &seed},
		{"msg", r.Message, &msg},
		{"pk", r.PublicKey, &pk},
		{"sk", r.SecretKey, &sk},
		{"sig", r.Signature, &sig},
	}
	for _, f := range fields {
		*f.dst, err = hex.DecodeString(f.src)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("vectors: decoding %s: %w", f.name, err)
		}
	}
	return seed, msg, pk, sk, sig, nil
}

// Save writes the vector set to path as indented JSON.
func Save(path string, f *File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load reads a vector set from path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("vectors: parsing %s: %w", path, err)
	}
	return &f, nil
}
