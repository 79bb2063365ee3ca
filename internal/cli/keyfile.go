package cli

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/poly"
	"github.com/f3rmion/tbls/tbls"
)

// PublicFile is the public half of a dealing.
type PublicFile struct {
	Algorithm         string   `yaml:"algorithm"`
	Threshold         uint32   `yaml:"threshold"`
	Receivers         uint32   `yaml:"receivers"`
	CombinedPublicKey string   `yaml:"combined_public_key"`
	Coefficients      []string `yaml:"public_coefficients"`
}

// ShareFile holds one receiver's secret share.
type ShareFile struct {
	Algorithm string `yaml:"algorithm"`
	Index     uint32 `yaml:"index"`
	Share     string `yaml:"share"`
	PublicKey string `yaml:"public_key"`
}

func newPublicFile(pc *poly.PublicCoefficients, receivers tbls.NumberOfNodes) *PublicFile {
	coeffs := make([]string, len(pc.Coefficients))
	for i, c := range pc.Coefficients {
		coeffs[i] = hex.EncodeToString(c.Bytes())
	}
	combined := tbls.PublicKeyToBytes(tbls.CombinedPublicKey(pc))
	return &PublicFile{
		Algorithm:         string(tbls.AlgorithmThresBLS12381),
		Threshold:         uint32(pc.Threshold()),
		Receivers:         uint32(receivers),
		CombinedPublicKey: hex.EncodeToString(combined[:]),
		Coefficients:      coeffs,
	}
}

// maxReceivers bounds the receiver count accepted from a public file,
// which sizes per-receiver slices.
const maxReceivers = 1 << 16

// publicCoefficients checks the header and decodes the coefficients.
func (f *PublicFile) publicCoefficients() (*poly.PublicCoefficients, error) {
	if f.Receivers > maxReceivers {
		return nil, fmt.Errorf("too many receivers: %d > %d", f.Receivers, maxReceivers)
	}
	if f.Threshold > f.Receivers {
		return nil, fmt.Errorf("threshold %d exceeds receivers %d", f.Threshold, f.Receivers)
	}
	if len(f.Coefficients) != int(f.Threshold) {
		return nil, fmt.Errorf("expected %d public coefficients, found %d", f.Threshold, len(f.Coefficients))
	}
	points := make([]group.Point, len(f.Coefficients))
	for i, c := range f.Coefficients {
		b, err := hex.DecodeString(c)
		if err != nil {
			return nil, fmt.Errorf("public coefficient %d: %w", i, err)
		}
		p, err := tbls.PublicKeyFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("public coefficient %d: %w", i, err)
		}
		points[i] = p
	}
	return poly.PublicCoefficientsFromPoints(tbls.PublicKeyGroup(), points), nil
}

func (f *ShareFile) secretKey() (group.Scalar, error) {
	b, err := hex.DecodeString(f.Share)
	if err != nil {
		return nil, fmt.Errorf("share: %w", err)
	}
	defer wipe(b)
	return tbls.SecretKeyFromBytes(b)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func writeYAML(path string, v any, perm os.FileMode) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func readPublicFile(path string) (*PublicFile, *poly.PublicCoefficients, error) {
	var f PublicFile
	if err := readYAML(path, &f); err != nil {
		return nil, nil, err
	}
	pc, err := f.publicCoefficients()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, pc, nil
}
