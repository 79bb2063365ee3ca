package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/tbls"
)

func (a *app) signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Produce a signature share",
		Long: `Sign a message with one share file. Prints "<index>:<signature hex>",
the form accepted by combine --sig.`,
		RunE: a.runSign,
	}
	cmd.Flags().String("share", "", "share file (required)")
	_ = cmd.MarkFlagRequired("share")
	addMessageFlags(cmd)
	return cmd
}

func (a *app) runSign(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("share")
	message, err := messageFromFlags(cmd)
	if err != nil {
		return err
	}

	var f ShareFile
	if err := readYAML(path, &f); err != nil {
		return err
	}
	sk, err := f.secretKey()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer sk.Zeroize()

	sig, err := tbls.SignMessage(message, sk)
	if err != nil {
		return err
	}

	b := tbls.SignatureToBytes(sig)
	a.logger.Debug("signed message", zap.Uint32("index", f.Index), zap.Int("message_len", len(message)))
	fmt.Fprintf(cmd.OutOrStdout(), "%d:%s\n", f.Index, hex.EncodeToString(b[:]))
	return nil
}

func (a *app) combineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine signature shares",
		Long: `Combine at least threshold signature shares, each given as
--sig <index>:<hex>. With a message flag every share and the result are
verified first.`,
		RunE: a.runCombine,
	}
	cmd.Flags().String("public", "", "public file (required)")
	cmd.Flags().StringArray("sig", nil, "signature share as <index>:<hex>, repeatable")
	_ = cmd.MarkFlagRequired("public")
	addMessageFlags(cmd)
	return cmd
}

func (a *app) runCombine(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("public")
	raw, _ := cmd.Flags().GetStringArray("sig")

	pub, pc, err := readPublicFile(path)
	if err != nil {
		return err
	}

	sigs := make([]group.Point, pub.Receivers)
	for _, s := range raw {
		index, sig, err := parseSignatureShare(s)
		if err != nil {
			return err
		}
		if index >= pub.Receivers {
			return fmt.Errorf("share index %d out of range (receivers=%d)", index, pub.Receivers)
		}
		if sigs[index] != nil {
			return fmt.Errorf("duplicate share for index %d", index)
		}
		sigs[index] = sig
	}

	var message []byte
	verifying := hasMessageFlag(cmd)
	if verifying {
		message, err = messageFromFlags(cmd)
		if err != nil {
			return err
		}
		for i, sig := range sigs {
			if sig == nil {
				continue
			}
			pk := tbls.IndividualPublicKey(pc, tbls.NodeIndex(i))
			if err := tbls.VerifyIndividualSig(message, sig, pk); err != nil {
				return fmt.Errorf("share %d: %w", i, err)
			}
		}
	}

	combined, err := tbls.CombineSignatures(sigs, tbls.NumberOfNodes(pub.Threshold))
	if err != nil {
		return err
	}
	if verifying {
		if err := tbls.VerifyCombinedSig(message, combined, tbls.CombinedPublicKey(pc)); err != nil {
			return err
		}
	}

	b := tbls.SignatureToBytes(combined)
	a.logger.Debug("combined signature", zap.Int("shares", len(raw)), zap.Bool("verified", verifying))
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b[:]))
	return nil
}

func parseSignatureShare(s string) (uint32, group.Point, error) {
	idx, sigHex, ok := strings.Cut(s, ":")
	if !ok {
		return 0, nil, fmt.Errorf("invalid share %q: expected <index>:<hex>", s)
	}
	index, err := strconv.ParseUint(idx, 10, 32)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid share index %q: %w", idx, err)
	}
	b, err := hex.DecodeString(sigHex)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid share %d: %w", index, err)
	}
	sig, err := tbls.SignatureFromBytes(b)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid share %d: %w", index, err)
	}
	return uint32(index), sig, nil
}
