package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/token"
)

// feedboard-keygen generates an Ed25519 caller identity and a signed bearer
// token for it. Pass -seed to reuse an existing key instead of generating one.
func main() {
	seedHex := flag.String("seed", "", "hex-encoded 32-byte private key seed; empty generates a new key")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	var priv ed25519.PrivateKey
	if *seedHex == "" {
		var err error
		_, priv, err = ed25519.GenerateKey(rand.Reader)
		if err != nil {
			log.Fatalf("Failed to generate key: %v", err)
		}
	} else {
		seed, err := hex.DecodeString(*seedHex)
		if err != nil {
			log.Fatalf("Failed to decode seed: %v", err)
		}
		if len(seed) != ed25519.SeedSize {
			log.Fatalf("Seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
		}
		priv = ed25519.NewKeyFromSeed(seed)
	}

	id, err := domain.IdentityFromBytes(priv.Public().(ed25519.PublicKey))
	if err != nil {
		log.Fatalf("Failed to derive identity: %v", err)
	}

	bearer, err := token.Sign(priv, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  Feedboard Caller Identity")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Identity (public key, hex):")
	fmt.Println(id.String())
	fmt.Println()
	fmt.Println("Private key seed (hex):")
	fmt.Println(hex.EncodeToString(priv.Seed()))
	fmt.Println()
	fmt.Printf("Bearer token (valid %s):\n", *ttl)
	fmt.Println(bearer)
	fmt.Println()
	fmt.Println("Example request:")
	fmt.Printf("curl -X POST http://localhost:8080/v1/boards \\\n")
	fmt.Printf("  -H \"Authorization: Bearer %s\" \\\n", bearer)
	fmt.Printf("  -d '{\"board_id\": \"demo\", \"content_pointer\": \"%s\"}'\n", "Qm"+strings.Repeat("0", 42))
	fmt.Println()
	fmt.Println("Keep the seed secret; anyone holding it can act as this identity.")
	fmt.Println("=================================================")
}
