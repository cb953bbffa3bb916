// Command jwtparse signs a JSON object read from stdin, or decodes a token
// read from stdin. The secret and parser settings come from the environment
// (see internal/config).
//
//	echo '{"sub":"u1"}' | jwtparse serialize -stamp
//	jwtparse unserialize -json < token.txt
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cybergodev/jwtparser"
	"github.com/cybergodev/jwtparser/internal/config"
	"github.com/cybergodev/jwtparser/internal/logattr"
	"github.com/cybergodev/jwtparser/internal/security"
)

// maxInput bounds what is read from stdin.
const maxInput = 1 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jwtparse <serialize|unserialize> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  JWT_SECRET          secret key (required unless unserialize -no-verify)")
	fmt.Fprintln(w, "  JWT_ALGORITHM       sha256, sha384 or sha512 (default sha256)")
	fmt.Fprintln(w, "  JWT_HEADER_NAMING   hash or jose (default hash)")
	fmt.Fprintln(w, "  JWT_MAX_TOKEN_SIZE  maximum token length, 0 for none")
	fmt.Fprintln(w, "  LOG_LEVEL           debug, info, warn or error")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", slog.Any("config", cfg))

	opts, err := cfg.Options(logger)
	if err != nil {
		logger.Error("invalid configuration", logattr.Error(err))
		return 1
	}

	parser, err := jwtparser.New(opts...)
	if err != nil {
		logger.Error("failed to create parser", logattr.Error(err))
		return 1
	}

	switch args[0] {
	case "serialize":
		return serialize(args[1:], cfg, parser, logger, stdin, stdout)
	case "unserialize":
		return unserialize(args[1:], cfg, parser, logger, stdin, stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func serialize(args []string, cfg config.Config, parser *jwtparser.Parser, logger *slog.Logger, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("serialize", flag.ContinueOnError)
	algName := fs.String("alg", cfg.Algorithm, "Signing algorithm (sha256, sha384, sha512)")
	stamp := fs.Bool("stamp", false, "Add iat and jti claims when absent")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	alg, err := jwtparser.ParseAlgorithm(*algName)
	if err != nil {
		logger.Error("invalid algorithm", logattr.Error(err))
		return 2
	}

	if err := cfg.RequireSecret(); err != nil {
		logger.Error("cannot sign without a secret", logattr.Error(err))
		return 1
	}

	key := cfg.Key()
	if reason := security.WeakKeyReason(key, alg.Hash().Size()); reason != "" {
		logger.Warn("weak secret key", logattr.Reason(reason), logattr.Alg(alg.String()))
	}

	input, err := io.ReadAll(io.LimitReader(stdin, maxInput))
	if err != nil {
		logger.Error("failed to read payload", logattr.Error(err))
		return 1
	}

	var payload map[string]any
	dec := json.NewDecoder(strings.NewReader(string(input)))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		logger.Error("payload is not a JSON object", logattr.Error(err))
		return 1
	}

	if *stamp {
		payload = jwtparser.StampClaims(payload, time.Now())
	}

	token, err := parser.Serialize(payload, key, alg)
	if err != nil {
		logger.Error("failed to serialize token", logattr.Error(err))
		return 1
	}

	fmt.Fprintln(stdout, token)
	return 0
}

func unserialize(args []string, cfg config.Config, parser *jwtparser.Parser, logger *slog.Logger, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("unserialize", flag.ContinueOnError)
	noVerify := fs.Bool("no-verify", false, "Decode without checking the signature or iat")
	outputJSON := fs.Bool("json", false, "Output claims as compact JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !*noVerify {
		if err := cfg.RequireSecret(); err != nil {
			logger.Error("cannot verify without a secret; pass -no-verify to decode only", logattr.Error(err))
			return 1
		}
	}

	input, err := io.ReadAll(io.LimitReader(stdin, maxInput))
	if err != nil {
		logger.Error("failed to read token", logattr.Error(err))
		return 1
	}
	token := strings.TrimSpace(string(input))

	claims, err := parser.Unserialize(token, cfg.Key(), !*noVerify)
	if err != nil {
		logger.Error("failed to unserialize token", logattr.Reason(reasonOf(err)), logattr.TokenLen(len(token)))
		return 1
	}

	enc := json.NewEncoder(stdout)
	if !*outputJSON {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(claims); err != nil {
		logger.Error("failed to write claims", logattr.Error(err))
		return 1
	}

	if iat, ok := claims.IssuedAt(); ok && !*outputJSON {
		logger.Info("token decoded", slog.Time("issued_at", iat), logattr.Verify(!*noVerify))
	}
	return 0
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, jwtparser.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, jwtparser.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, jwtparser.ErrSignature):
		return "signature"
	case errors.Is(err, jwtparser.ErrClaim):
		return "claim"
	default:
		return "unknown"
	}
}
