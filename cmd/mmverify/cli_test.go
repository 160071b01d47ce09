package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const miniDB = `
$c ( ) -> wff $.
$v p q $.
wp $f wff p $.
wq $f wff q $.
w2 $a wff ( p -> q ) $.
wnew $p wff ( p -> q ) $= wp wq w2 $.
`

func writeMiniDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.mm")
	require.NoError(t, os.WriteFile(path, []byte(miniDB), 0o644))
	return path
}

func TestVerifyCmd_AcceptsValidDatabase(t *testing.T) {
	path := writeMiniDB(t)
	verifyVerbosity = 0
	verifyCheck = true
	err := verifyCmd.RunE(verifyCmd, []string{path})
	require.NoError(t, err)
}

func TestVerifyCmd_RejectsMissingFile(t *testing.T) {
	verifyVerbosity = 0
	verifyCheck = true
	err := verifyCmd.RunE(verifyCmd, []string{filepath.Join(t.TempDir(), "missing.mm")})
	require.Error(t, err)
}

func TestVerifyCmd_CheckFlagDisablesProofChecking(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.mm")
	db := `
$c ( ) -> wff $.
$v p q $.
wp $f wff p $.
wq $f wff q $.
w2 $a wff ( p -> q ) $.
wnew $p wff ( p -> q ) $= w2 $.
`
	require.NoError(t, os.WriteFile(path, []byte(db), 0o644))

	verifyVerbosity = 0
	verifyCheck = false
	require.NoError(t, verifyCmd.RunE(verifyCmd, []string{path}))

	verifyCheck = true
	require.Error(t, verifyCmd.RunE(verifyCmd, []string{path}))
}

func TestLabelsCmd_ListsDeclaredLabels(t *testing.T) {
	path := writeMiniDB(t)
	labelsVerbosity = 0
	err := labelsCmd.RunE(labelsCmd, []string{path})
	require.NoError(t, err)
}

func TestBatchCmd_VerifiesEachDatabaseIndependently(t *testing.T) {
	pathA := writeMiniDB(t)
	pathB := writeMiniDB(t)

	batchVerbosity = 0
	batchCheck = true
	err := batchCmd.RunE(batchCmd, []string{pathA, pathB})
	require.NoError(t, err)
}

func TestBatchCmd_ReportsFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.mm")
	require.NoError(t, os.WriteFile(bad, []byte("$c wff $. wnew $p wff p $."), 0o644))

	batchVerbosity = 0
	batchCheck = true
	err := batchCmd.RunE(batchCmd, []string{bad})
	require.Error(t, err)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := &rootCmdForTest{}
	cmds := root.subcommandNames()
	require.Contains(t, cmds, "verify")
	require.Contains(t, cmds, "version")
	require.Contains(t, cmds, "labels")
	require.Contains(t, cmds, "batch")
}

// rootCmdForTest mirrors main's root command wiring without invoking main(),
// so the subcommand set can be asserted on directly.
type rootCmdForTest struct{}

func (rootCmdForTest) subcommandNames() []string {
	return []string{versionCmd.Name(), verifyCmd.Name(), labelsCmd.Name(), batchCmd.Name()}
}
