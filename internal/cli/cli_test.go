package cli

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/tbls/tbls"
)

const testSeedHex = "0101010101010101010101010101010101010101010101010101010101010101"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func deal(t *testing.T, dir string, extra ...string) string {
	t.Helper()
	args := append([]string{"deal", "-t", "2", "-n", "3", "--dir", dir, "--seed-hex", testSeedHex}, extra...)
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func TestDealSignCombineVerify(t *testing.T) {
	dir := t.TempDir()
	combinedKey := deal(t, dir)

	publicPath := filepath.Join(dir, publicFileName)
	for _, name := range []string{publicFileName, "share-0.yaml", "share-1.yaml", "share-2.yaml"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	info, err := os.Stat(filepath.Join(dir, "share-0.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var pub PublicFile
	require.NoError(t, readYAML(publicPath, &pub))
	assert.Equal(t, uint32(2), pub.Threshold)
	assert.Equal(t, uint32(3), pub.Receivers)
	assert.Equal(t, combinedKey, pub.CombinedPublicKey)

	share0, err := run(t, "sign", "--share", filepath.Join(dir, "share-0.yaml"), "-m", "hello")
	require.NoError(t, err)
	share2, err := run(t, "sign", "--share", filepath.Join(dir, "share-2.yaml"), "-m", "hello")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(share0, "0:"))
	assert.True(t, strings.HasPrefix(share2, "2:"))

	t.Run("VerifyIndividual", func(t *testing.T) {
		out, err := run(t, "verify", "--public", publicPath, "--index", "2",
			"-m", "hello", "--signature", strings.TrimPrefix(share2, "2:"))
		require.NoError(t, err)
		assert.Equal(t, "OK", out)

		_, err = run(t, "verify", "--public", publicPath, "--index", "1",
			"-m", "hello", "--signature", strings.TrimPrefix(share2, "2:"))
		var verr *tbls.SignatureVerificationError
		assert.ErrorAs(t, err, &verr)
	})

	combined, err := run(t, "combine", "--public", publicPath, "--sig", share0, "--sig", share2, "-m", "hello")
	require.NoError(t, err)

	t.Run("VerifyCombined", func(t *testing.T) {
		out, err := run(t, "verify", "--public", publicPath, "-m", "hello", "--signature", combined)
		require.NoError(t, err)
		assert.Equal(t, "OK", out)

		_, err = run(t, "verify", "--public", publicPath, "--message-hex", hex.EncodeToString([]byte("bye")), "--signature", combined)
		var verr *tbls.SignatureVerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("CombineWithoutMessage", func(t *testing.T) {
		out, err := run(t, "combine", "--public", publicPath, "--sig", share2, "--sig", share0)
		require.NoError(t, err)
		assert.Equal(t, combined, out)
	})

	t.Run("CombineBelowThreshold", func(t *testing.T) {
		_, err := run(t, "combine", "--public", publicPath, "--sig", share0)
		var invalid *tbls.InvalidArgumentError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("CombineDuplicate", func(t *testing.T) {
		_, err := run(t, "combine", "--public", publicPath, "--sig", share0, "--sig", share0)
		assert.Error(t, err)
	})

	t.Run("CombineRejectsBadShare", func(t *testing.T) {
		other, err := run(t, "sign", "--share", filepath.Join(dir, "share-1.yaml"), "-m", "other")
		require.NoError(t, err)
		_, err = run(t, "combine", "--public", publicPath, "--sig", share0, "--sig", other, "-m", "hello")
		var verr *tbls.SignatureVerificationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("PubKey", func(t *testing.T) {
		out, err := run(t, "pubkey", "--public", publicPath)
		require.NoError(t, err)
		assert.Equal(t, combinedKey, out)

		out, err = run(t, "pubkey", "--public", publicPath, "--index", "0")
		require.NoError(t, err)
		assert.NotEqual(t, combinedKey, out)

		_, err = run(t, "pubkey", "--public", publicPath, "--index", "3")
		assert.Error(t, err)
	})
}

func TestDealDeterministic(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	deal(t, a)
	deal(t, b)

	for _, name := range []string{publicFileName, "share-1.yaml"} {
		da, err := os.ReadFile(filepath.Join(a, name))
		require.NoError(t, err)
		db, err := os.ReadFile(filepath.Join(b, name))
		require.NoError(t, err)
		assert.Equal(t, da, db, name)
	}
}

func TestDealReshare(t *testing.T) {
	dir := t.TempDir()
	secretHex := strings.Repeat("00", 31) + "2a"
	out := deal(t, dir, "--secret-hex", secretHex)

	secret := tbls.PublicKeyGroup().NewScalar().SetUint64(42)
	want := tbls.PublicKeyToBytes(tbls.PublicKeyFromSecretKey(secret))
	assert.Equal(t, hex.EncodeToString(want[:]), out)
}

func TestDealConfigFile(t *testing.T) {
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys")
	config := filepath.Join(dir, "tbls.yaml")
	require.NoError(t, os.WriteFile(config, []byte("threshold: 3\nreceivers: 4\ndir: "+keys+"\n"), 0o600))

	_, err := run(t, "deal", "--config", config, "--seed-hex", testSeedHex)
	require.NoError(t, err)

	var pub PublicFile
	require.NoError(t, readYAML(filepath.Join(keys, publicFileName), &pub))
	assert.Equal(t, uint32(3), pub.Threshold)
	assert.Equal(t, uint32(4), pub.Receivers)
	assert.Len(t, pub.Coefficients, 3)
	assert.FileExists(t, filepath.Join(keys, "share-3.yaml"))
}

func TestDealInvalidArguments(t *testing.T) {
	_, err := run(t, "deal", "-t", "4", "-n", "3", "--dir", t.TempDir())
	var invalid *tbls.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)

	_, err = run(t, "deal", "--dir", t.TempDir(), "--seed-hex", "abcd")
	assert.Error(t, err)

	_, err = run(t, "deal", "-t", "2", "-n", "70000", "--dir", t.TempDir())
	assert.Error(t, err)
}

func TestPublicFileValidation(t *testing.T) {
	dir := t.TempDir()
	deal(t, dir)
	publicPath := filepath.Join(dir, publicFileName)

	var pub PublicFile
	require.NoError(t, readYAML(publicPath, &pub))

	cases := map[string]func(f *PublicFile){
		"TooManyReceivers":        func(f *PublicFile) { f.Receivers = 1 << 31 },
		"ThresholdAboveReceivers": func(f *PublicFile) { f.Receivers = 1 },
		"MissingCoefficient":      func(f *PublicFile) { f.Coefficients = f.Coefficients[:1] },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := pub
			f.Coefficients = append([]string(nil), pub.Coefficients...)
			mutate(&f)
			path := filepath.Join(t.TempDir(), publicFileName)
			require.NoError(t, writeYAML(path, &f, 0o644))

			_, err := run(t, "combine", "--public", path, "--sig", "0:00")
			assert.Error(t, err)
			_, err = run(t, "pubkey", "--public", path)
			assert.Error(t, err)
		})
	}
}
