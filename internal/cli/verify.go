package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
	"github.com/f3rmion/tbls/tbls"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an individual or combined signature",
		Long: `Verify a signature against the combined public key, or against the
individual key of --index when it is given.`,
		RunE: a.runVerify,
	}
	cmd.Flags().String("public", "", "public file (required)")
	cmd.Flags().String("signature", "", "signature as hex (required)")
	cmd.Flags().Int64("index", -1, "share index; -1 verifies a combined signature")
	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("signature")
	addMessageFlags(cmd)
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("public")
	sigHex, _ := cmd.Flags().GetString("signature")
	index, _ := cmd.Flags().GetInt64("index")

	message, err := messageFromFlags(cmd)
	if err != nil {
		return err
	}
	pub, pc, err := readPublicFile(path)
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(sigHex)
	if err != nil {
		return fmt.Errorf("invalid --signature: %w", err)
	}
	sig, err := tbls.SignatureFromBytes(b)
	if err != nil {
		return err
	}

	pk, err := selectPublicKey(pc, pub, index)
	if err != nil {
		return err
	}
	if index < 0 {
		err = tbls.VerifyCombinedSig(message, sig, pk)
	} else {
		err = tbls.VerifyIndividualSig(message, sig, pk)
	}
	if err != nil {
		a.logger.Warn("signature rejected", zap.Int64("index", index))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}

func (a *app) pubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the combined or an individual public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("public")
			index, _ := cmd.Flags().GetInt64("index")

			pub, pc, err := readPublicFile(path)
			if err != nil {
				return err
			}
			pk, err := selectPublicKey(pc, pub, index)
			if err != nil {
				return err
			}
			b := tbls.PublicKeyToBytes(pk)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b[:]))
			return nil
		},
	}
	cmd.Flags().String("public", "", "public file (required)")
	cmd.Flags().Int64("index", -1, "share index; -1 prints the combined key")
	_ = cmd.MarkFlagRequired("public")
	return cmd
}

func selectPublicKey(pc *poly.PublicCoefficients, pub *PublicFile, index int64) (group.Point, error) {
	if index < 0 {
		return tbls.CombinedPublicKey(pc), nil
	}
	if index >= int64(pub.Receivers) {
		return nil, fmt.Errorf("index %d out of range (receivers=%d)", index, pub.Receivers)
	}
	return tbls.IndividualPublicKey(pc, tbls.NodeIndex(index)), nil
}
