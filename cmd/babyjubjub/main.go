// Command babyjubjub is a small CLI wrapper around the eddsa and mimc7
// packages: key generation, signing, verification, and MiMC-7 hashing.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/eddsa"
	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/field"
	"github.com/mahdiidarabi/babyjubjub-eddsa/pkg/mimc7"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "genkey":
		runGenKey(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "mimc7":
		runMimc7(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: babyjubjub <genkey|sign|verify|mimc7> [flags]")
}

func runGenKey(args []string) {
	fs := flag.NewFlagSet("genkey", flag.ExitOnError)
	fs.Parse(args)

	sk, err := eddsa.GenerateKey(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate key")
	}
	pub := eddsa.GetPublicKeyBlob(sk)

	fmt.Printf("private_key: %s\n", hex.EncodeToString(sk[:]))
	fmt.Printf("public_key:  %s\n", hex.EncodeToString(pub[:]))
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	sk := fs.String("sk", "", "secret key, hex-encoded (32 bytes)")
	msg := fs.String("msg", "", "message to sign (raw bytes of this string)")
	fs.Parse(args)

	if *sk == "" || *msg == "" {
		fmt.Fprintln(os.Stderr, "Error: --sk and --msg are required")
		fs.Usage()
		os.Exit(1)
	}

	skBytes, err := hex.DecodeString(strings.TrimPrefix(*sk, "0x"))
	if err != nil || len(skBytes) != 32 {
		log.Fatal().Err(err).Msg("--sk must be 32 bytes of hex")
	}
	var sk32 [32]byte
	copy(sk32[:], skBytes)

	sig := eddsa.SignBlob([]byte(*msg), sk32)
	fmt.Printf("signature: %s\n", hex.EncodeToString(sig[:]))
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pub := fs.String("pub", "", "public key, hex-encoded (32 bytes)")
	msg := fs.String("msg", "", "message that was signed")
	sig := fs.String("sig", "", "signature, hex-encoded (64 bytes)")
	fs.Parse(args)

	if *pub == "" || *msg == "" || *sig == "" {
		fmt.Fprintln(os.Stderr, "Error: --pub, --msg and --sig are required")
		fs.Usage()
		os.Exit(1)
	}

	pubBytes, err := hex.DecodeString(strings.TrimPrefix(*pub, "0x"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid --pub hex")
	}
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(*sig, "0x"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid --sig hex")
	}

	ok := eddsa.VerifyBlob([]byte(*msg), sigBytes, pubBytes)
	if ok {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid")
		os.Exit(1)
	}
}

func runMimc7(args []string) {
	fs := flag.NewFlagSet("mimc7", flag.ExitOnError)
	key := fs.String("key", "0", "key, decimal")
	rounds := fs.Int("rounds", mimc7.DefaultRounds, "number of rounds")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "Error: provide at least one decimal input value")
		os.Exit(1)
	}

	keyInt, ok := new(big.Int).SetString(*key, 10)
	if !ok {
		log.Fatal().Str("key", *key).Msg("invalid --key")
	}

	elems := make([]*field.Element, len(rest))
	for i, v := range rest {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			log.Fatal().Str("value", v).Msg("invalid input value")
		}
		elems[i] = field.New(n)
	}

	h := mimc7.New(mimc7.WithNRounds(*rounds))
	result := h.MultiHash(elems, field.New(keyInt))
	fmt.Printf("0x%x\n", result.Int())
}
