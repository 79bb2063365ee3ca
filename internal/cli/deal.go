package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f3rmion/tbls/seed"
	"github.com/f3rmion/tbls/session"
	"github.com/f3rmion/tbls/tbls"
)

const publicFileName = "public.yaml"

func shareFileName(index tbls.NodeIndex) string {
	return fmt.Sprintf("share-%d.yaml", index)
}

func (a *app) dealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a new threshold key",
		Long: `Deal a (threshold, receivers) key and write public.yaml and one
share-<i>.yaml per receiver into --dir.

The seed is read from crypto/rand unless --seed-hex is given. With
--secret-hex the given secret key is reshared instead of a fresh one.`,
		RunE: a.runDeal,
	}

	cmd.Flags().Uint32P("threshold", "t", 2, "minimum signers required (t)")
	cmd.Flags().Uint32P("receivers", "n", 3, "number of shares (n)")
	cmd.Flags().String("dir", ".", "output directory")
	cmd.Flags().String("seed-hex", "", "32-byte dealing seed as hex (testing only)")
	cmd.Flags().String("secret-hex", "", "existing 32-byte secret key to reshare, as hex")
	_ = a.v.BindPFlag("threshold", cmd.Flags().Lookup("threshold"))
	_ = a.v.BindPFlag("receivers", cmd.Flags().Lookup("receivers"))
	_ = a.v.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	return cmd
}

func (a *app) runDeal(cmd *cobra.Command, args []string) error {
	threshold := tbls.NumberOfNodes(a.v.GetUint32("threshold"))
	receivers := tbls.NumberOfNodes(a.v.GetUint32("receivers"))
	dir := a.v.GetString("dir")
	if receivers > maxReceivers {
		return fmt.Errorf("too many receivers: %d > %d", receivers, maxReceivers)
	}

	s, err := dealingSeed(cmd)
	if err != nil {
		return err
	}
	defer s.Zeroize()

	var dealing *session.Dealing
	if cmd.Flags().Changed("secret-hex") {
		secretHex, _ := cmd.Flags().GetString("secret-hex")
		b, err := hex.DecodeString(secretHex)
		if err != nil {
			return fmt.Errorf("invalid --secret-hex: %w", err)
		}
		secret, err := tbls.SecretKeyFromBytes(b)
		wipe(b)
		if err != nil {
			return err
		}
		defer secret.Zeroize()
		dealing, err = session.Reshare(s, threshold, receivers, secret, session.WithLogger(a.logger))
		if err != nil {
			return err
		}
	} else {
		dealing, err = session.Deal(s, threshold, receivers, session.WithLogger(a.logger))
		if err != nil {
			return err
		}
	}
	defer dealing.Zeroize()

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	pub := newPublicFile(dealing.PublicCoefficients, receivers)
	if err := writeYAML(filepath.Join(dir, publicFileName), pub, 0o644); err != nil {
		return err
	}

	for _, h := range dealing.Holders {
		sk := tbls.SecretKeyToBytes(h.Share())
		pk := tbls.PublicKeyToBytes(h.PublicKey())
		f := &ShareFile{
			Algorithm: string(tbls.AlgorithmThresBLS12381),
			Index:     uint32(h.Index()),
			Share:     hex.EncodeToString(sk[:]),
			PublicKey: hex.EncodeToString(pk[:]),
		}
		err := writeYAML(filepath.Join(dir, shareFileName(h.Index())), f, 0o600)
		wipe(sk[:])
		if err != nil {
			return err
		}
	}

	a.logger.Info("wrote dealing", zap.String("dir", dir))
	fmt.Fprintln(cmd.OutOrStdout(), pub.CombinedPublicKey)
	return nil
}

func dealingSeed(cmd *cobra.Command) (*seed.Seed, error) {
	if !cmd.Flags().Changed("seed-hex") {
		return seed.FromReader(rand.Reader)
	}
	seedHex, _ := cmd.Flags().GetString("seed-hex")
	b, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("invalid --seed-hex: %w", err)
	}
	defer wipe(b)
	if len(b) != seed.Size {
		return nil, fmt.Errorf("--seed-hex must be %d bytes, got %d", seed.Size, len(b))
	}
	var raw [seed.Size]byte
	copy(raw[:], b)
	s := seed.FromRaw(raw)
	wipe(raw[:])
	return s, nil
}
