// zkdil-vectors generates or checks signature test vectors.
//
// Generation derives keypairs from counter seeds (or PRNG-driven messages
// in stress mode), signs, verifies, and writes the vectors as JSON. Check
// mode re-verifies every record in an existing file, regenerating the
// signature when the secret key is present.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"log"

	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/madars/zkdilithium-signer/internal/vectors"
	"github.com/madars/zkdilithium-signer/zkdilithium"
)

func main() {
	out := flag.String("out", "vectors.json", "output path for generated vectors")
	check := flag.String("check", "", "verify an existing vector file instead of generating")
	count := flag.Int("count", 10, "number of vectors to generate")
	stress := flag.Bool("stress", false, "use PRNG-driven variable-length messages")
	flag.Parse()

	if *check != "" {
		if err := checkFile(*check); err != nil {
			log.Fatalf("check: %v", err)
		}
		fmt.Println("all vectors verified")
		return
	}

	f, err := generate(*count, *stress)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if err := vectors.Save(*out, f); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("wrote %d vectors to %s\n", len(f.Records), *out)
}

func generate(count int, stress bool) (*vectors.File, error) {
	f := &vectors.File{}
	for i := 0; i < count; i++ {
		seed := make([]byte, zkdilithium.SeedSize)
		binary.LittleEndian.PutUint32(seed, uint32(i))
		pk, sk := zkdilithium.Gen(seed)

		msg := []byte(fmt.Sprintf("message-%d", i))
		if stress {
			prng, err := utils.NewKeyedPRNG(seed)
			if err != nil {
				return nil, fmt.Errorf("keyed prng: %w", err)
			}
			msg = make([]byte, 1+i*37%1024)
			if _, err := prng.Read(msg); err != nil {
				return nil, fmt.Errorf("prng read: %w", err)
			}
		}

		sig, err := zkdilithium.Sign(sk, msg)
		if err != nil {
			return nil, fmt.Errorf("sign vector %d: %w", i, err)
		}
		if !zkdilithium.Verify(pk, msg, sig) {
			return nil, fmt.Errorf("vector %d does not verify", i)
		}
		f.Records = append(f.Records, vectors.NewRecord(seed, msg, pk, sk, sig))
	}
	return f, nil
}

func checkFile(path string) error {
	f, err := vectors.Load(path)
	if err != nil {
		return err
	}
	for i, rec := range f.Records {
		seed, msg, pk, sk, sig, err := rec.Bytes()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if len(seed) == zkdilithium.SeedSize {
			pk2, sk2 := zkdilithium.Gen(seed)
			if !bytes.Equal(pk2, pk) || !bytes.Equal(sk2, sk) {
				return fmt.Errorf("record %d: keypair does not match its seed", i)
			}
		}
		if !zkdilithium.Verify(pk, msg, sig) {
			return fmt.Errorf("record %d: signature does not verify", i)
		}
		if len(sk) == zkdilithium.SecretKeySize {
			sig2, err := zkdilithium.Sign(sk, msg)
			if err != nil {
				return fmt.Errorf("record %d: re-sign: %w", i, err)
			}
			if !bytes.Equal(sig2, sig) {
				return fmt.Errorf("record %d: signing is not reproducible", i)
			}
		}
	}
	return nil
}
