// Command sikectl generates SIKE key pairs, encapsulates and decapsulates
// shared keys and runs SIDH key agreements from the command line.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"sike.mleku.dev"
)

const (
	flagConfig       = "config"
	flagSeed         = "seed"
	flagUncompressed = "uncompressed"
	flagLogLevel     = "loglevel"
	flagName         = "name"
	flagPublicKey    = "pk"
	flagSecretKey    = "sk"
	flagCiphertext   = "ct"
)

// env is the state shared by all commands, set up before any of them runs
type env struct {
	cfg    *Config
	log    zerolog.Logger
	params *sike.Params
	rand   io.Reader
	out    io.Writer
}

func main() {
	app := newApp()
	app.ErrWriter = colorable.NewColorableStderr()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sikectl: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "sikectl",
		Usage: "SIKEp434 key encapsulation tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "TOML configuration file",
				EnvVars: []string{"SIKECTL_CONFIG"},
			},
			&cli.StringFlag{
				Name:  flagSeed,
				Usage: "derive all randomness from this seed (reproducible, never use for real keys)",
			},
			&cli.BoolFlag{
				Name:  flagUncompressed,
				Usage: "use uncompressed public keys and ciphertexts",
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level: trace, debug, info, warn, error",
				EnvVars: []string{"SIKECTL_LOGLEVEL"},
			},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			{
				Name:      "keygen",
				Usage:     "Generate a KEM key pair",
				UsageText: "sikectl [global options] keygen [--name NAME]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagName, Usage: "base name of the key files", Value: "sike"},
				},
				Action: e.keygen,
			},
			{
				Name:      "encaps",
				Usage:     "Encapsulate a shared key to a public key",
				UsageText: "sikectl [global options] encaps --pk FILE [--name NAME]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagPublicKey, Usage: "public key file", Required: true},
					&cli.StringFlag{Name: flagName, Usage: "base name of the ciphertext file", Value: "sike"},
				},
				Action: e.encaps,
			},
			{
				Name:      "decaps",
				Usage:     "Recover a shared key from a ciphertext",
				UsageText: "sikectl [global options] decaps --sk FILE --ct FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagSecretKey, Usage: "secret key file", Required: true},
					&cli.StringFlag{Name: flagCiphertext, Usage: "ciphertext file", Required: true},
				},
				Action: e.decaps,
			},
			{
				Name:   "agree",
				Usage:  "Run an SIDH key agreement between two fresh parties",
				Action: e.agree,
			},
			{
				Name:   "info",
				Usage:  "Print the parameter set and its sizes",
				Action: e.info,
			},
		},
	}
}

// setup loads the configuration and resolves flags that override it
func (e *env) setup(c *cli.Context) error {
	cfg, err := LoadFile(c.String(flagConfig))
	if err != nil {
		return err
	}
	if c.IsSet(flagUncompressed) {
		cfg.KEM.Compressed = !c.Bool(flagUncompressed)
	}
	if c.IsSet(flagLogLevel) {
		cfg.Log.Level = c.String(flagLogLevel)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	e.cfg = cfg
	e.log = createLogger(c.App.ErrWriter, cfg.Log.Level)
	e.out = c.App.Writer

	e.params = sike.P434
	if !cfg.KEM.Compressed {
		e.params = sike.P434Uncompressed
	}
	if seed := c.String(flagSeed); seed != "" {
		e.log.Warn().Msg("using deterministic randomness")
		e.rand = sike.NewDeterministicReader([]byte(seed))
	}
	return nil
}

func createLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}

func (e *env) keygen(c *cli.Context) error {
	kem := sike.NewKEM(e.params)
	start := time.Now()
	sk, pk, err := kem.Keypair(e.rand)
	if err != nil {
		return errors.Wrap(err, "keygen")
	}
	defer sk.Clear()
	e.log.Debug().Dur("elapsed", time.Since(start)).Msg("key pair generated")

	name := c.String(flagName)
	skPath, err := e.writeFile(name+".sk", sk.Bytes(), 0o600)
	if err != nil {
		return err
	}
	pkPath, err := e.writeFile(name+".pk", pk.Bytes(), 0o644)
	if err != nil {
		return err
	}
	e.log.Info().
		Str("params", e.params.Name).
		Str("secret", skPath).
		Str("public", pkPath).
		Int("pkBytes", pk.Size()).
		Msg("wrote key pair")
	return nil
}

func (e *env) encaps(c *cli.Context) error {
	raw, err := e.readFile(c.String(flagPublicKey))
	if err != nil {
		return err
	}
	pk := sike.NewPublicKey(e.params, sike.Bob, e.params.Compressed)
	if err := pk.SetBytes(raw); err != nil {
		return errors.Wrap(err, "public key")
	}
	start := time.Now()
	ct, ss, err := sike.NewKEM(e.params).Encapsulate(e.rand, pk)
	if err != nil {
		return errors.Wrap(err, "encaps")
	}
	e.log.Debug().Dur("elapsed", time.Since(start)).Msg("encapsulated")

	ctPath, err := e.writeFile(c.String(flagName)+".ct", ct, 0o644)
	if err != nil {
		return err
	}
	e.log.Info().Str("ciphertext", ctPath).Int("ctBytes", len(ct)).Msg("wrote ciphertext")
	fmt.Fprintln(e.out, hex.EncodeToString(ss))
	return nil
}

func (e *env) decaps(c *cli.Context) error {
	rawSK, err := e.readFile(c.String(flagSecretKey))
	if err != nil {
		return err
	}
	ct, err := e.readFile(c.String(flagCiphertext))
	if err != nil {
		return err
	}
	sk := sike.NewPrivateKey(e.params, sike.Bob)
	if err := sk.SetBytes(rawSK); err != nil {
		return errors.Wrap(err, "secret key")
	}
	defer sk.Clear()
	start := time.Now()
	ss, err := sike.NewKEM(e.params).Decapsulate(sk, ct)
	if err != nil {
		return errors.Wrap(err, "decaps")
	}
	e.log.Debug().Dur("elapsed", time.Since(start)).Msg("decapsulated")
	fmt.Fprintln(e.out, hex.EncodeToString(ss))
	return nil
}

func (e *env) agree(c *cli.Context) error {
	start := time.Now()
	skA, pkA, err := sike.GenerateKeyPair(e.params, sike.Alice, e.rand)
	if err != nil {
		return errors.Wrap(err, "alice")
	}
	defer skA.Clear()
	skB, pkB, err := sike.GenerateKeyPair(e.params, sike.Bob, e.rand)
	if err != nil {
		return errors.Wrap(err, "bob")
	}
	defer skB.Clear()

	jA, err := sike.DeriveSecret(skA, pkB)
	if err != nil {
		return errors.Wrap(err, "alice")
	}
	jB, err := sike.DeriveSecret(skB, pkA)
	if err != nil {
		return errors.Wrap(err, "bob")
	}
	if !bytes.Equal(jA, jB) {
		return errors.New("shared secrets differ")
	}
	e.log.Info().
		Str("params", e.params.Name).
		Int("pkA", pkA.Size()).
		Int("pkB", pkB.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("agreement complete")
	fmt.Fprintln(e.out, hex.EncodeToString(jA))
	return nil
}

func (e *env) info(c *cli.Context) error {
	p := e.params
	fmt.Fprintf(e.out, "name        %s\n", p.Name)
	fmt.Fprintf(e.out, "compressed  %t\n", p.Compressed)
	fmt.Fprintf(e.out, "pk alice    %d\n", p.PublicKeySize(sike.Alice, p.Compressed))
	fmt.Fprintf(e.out, "pk bob      %d\n", p.PublicKeySize(sike.Bob, p.Compressed))
	fmt.Fprintf(e.out, "sk          %d\n", p.MsgLen+p.PrivateKeySize(sike.Bob))
	fmt.Fprintf(e.out, "ciphertext  %d\n", p.CiphertextSize())
	fmt.Fprintf(e.out, "shared key  %d\n", p.KeyLen)
	return nil
}

// writeFile stores b under the output directory, hex encoded if configured
func (e *env) writeFile(name string, b []byte, perm os.FileMode) (string, error) {
	if err := os.MkdirAll(e.cfg.Output.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "output directory")
	}
	path := filepath.Join(e.cfg.Output.Dir, name)
	data := b
	if e.cfg.Output.Hex {
		data = []byte(hex.EncodeToString(b) + "\n")
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}

// readFile loads a file written by writeFile
func (e *env) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !e.cfg.Output.Hex {
		return data, nil
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return b, nil
}
