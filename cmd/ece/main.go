// Command ece is a small CLI front end over the ece package: it drives
// Encrypt, Decrypt, and SaveKey-equivalent key generation from the shell,
// for manual interop testing against other Encrypted Content-Encoding
// implementations.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	ece "github.com/kmosiejczuk/encrypted-content-encoding"
	"github.com/kmosiejczuk/encrypted-content-encoding/internal/ecdhkey"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: ece <keygen|encrypt|decrypt> [args]")
	}

	switch os.Args[1] {
	case "keygen":
		keygen(os.Args[2:])
	case "encrypt":
		run(os.Args[2:], true)
	case "decrypt":
		run(os.Args[2:], false)
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func keygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	raw := fs.Bool("dh", false, "generate a P-256 ECDH keypair instead of a raw 16-byte key")
	if err := fs.Parse(args); err != nil {
		fatal("%v", err)
	}

	if *raw {
		priv, err := ecdhkey.Generate()
		if err != nil {
			fatal("generate ecdh key: %v", err)
		}
		fmt.Printf("private: %s\n", ece.EncodeParam(priv.Bytes()))
		fmt.Printf("public:  %s\n", ece.EncodeParam(priv.Public().Bytes()))
		return
	}

	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		fatal("generate key: %v", err)
	}
	fmt.Printf("key:   %s\n", ece.EncodeParam(key))
	fmt.Printf("keyid: %s\n", uuid.NewString())
}

func run(args []string, encrypt bool) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	variant := fs.String("variant", "aes128gcm", "aes128gcm | aesgcm | aesgcm128")
	saltB64 := fs.String("salt", "", "base64url salt (required for aesgcm/aesgcm128)")
	keyB64 := fs.String("key", "", "base64url 16-byte explicit key")
	keyid := fs.String("keyid", "", "keystore identifier")
	rs := fs.Uint("rs", ece.DefaultRecordSize, "record size")
	pad := fs.Int("pad", 0, "padding budget (encrypt only)")
	authSecretB64 := fs.String("auth-secret", "", "base64url auth secret")
	if err := fs.Parse(args); err != nil {
		fatal("%v", err)
	}

	v, err := parseVariant(*variant)
	if err != nil {
		fatal("%v", err)
	}

	opts := []ece.ParamsOption{ece.WithRecordSize(uint32(*rs))}
	if *saltB64 != "" {
		salt, err := ece.DecodeParam(*saltB64)
		if err != nil {
			fatal("decode salt: %v", err)
		}
		opts = append(opts, ece.WithSalt(salt))
	}
	if *keyB64 != "" {
		key, err := ece.DecodeParam(*keyB64)
		if err != nil {
			fatal("decode key: %v", err)
		}
		opts = append(opts, ece.WithKey(key))
	}
	if *keyid != "" {
		opts = append(opts, ece.WithKeyID(*keyid))
	}
	if *authSecretB64 != "" {
		secret, err := ece.DecodeParam(*authSecretB64)
		if err != nil {
			fatal("decode auth secret: %v", err)
		}
		opts = append(opts, ece.WithAuthSecret(secret))
	}
	if encrypt && *pad > 0 {
		opts = append(opts, ece.WithPad(*pad))
	}
	params := ece.NewParams(v, opts...)

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var out []byte
	if encrypt {
		out, err = ece.Encrypt(input, params)
	} else {
		out, err = ece.Decrypt(input, params)
	}
	if err != nil {
		fatal("%v", err)
	}

	os.Stdout.Write(out)
}

func parseVariant(s string) (ece.Variant, error) {
	switch s {
	case "aes128gcm":
		return ece.VariantAES128GCM, nil
	case "aesgcm":
		return ece.VariantAESGCM, nil
	case "aesgcm128":
		return ece.VariantAESGCM128, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
