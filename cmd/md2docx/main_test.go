package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasgasior/md2docx-go/internal/docx"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootNoArgs(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.ErrorIs(t, err, errNoInputs)
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestRootConvertsBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.md", "# Title\n- item\n\nplain *text*\n")
	missing := filepath.Join(dir, "missing.md")

	stdout, _, err := execute(t, missing, good)
	require.NoError(t, err)

	assert.Equal(t,
		"File not found: "+missing+"\n"+
			"Converted "+good+" to "+filepath.Join(dir, "good.docx")+"\n",
		stdout)
	assert.FileExists(t, filepath.Join(dir, "good.docx"))
}

func TestRootFatalError(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.md", "caf\xe9\n")

	_, _, err := execute(t, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode input")
}

func TestRootCharsetFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "latin.md", "# caf\xe9\n")

	_, _, err := execute(t, "--charset", "cp1252", in)
	require.NoError(t, err)

	stdout, _, err := execute(t, "inspect", filepath.Join(dir, "latin.docx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Title\tcafé\n")
}

func TestRootOutDirAndFrontMatter(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.md", "---\ntitle: Notes\n---\n## Section\n")
	outDir := filepath.Join(dir, "build")

	stdout, _, err := execute(t, "--out-dir", outDir, "--front-matter", in)
	require.NoError(t, err)
	out := filepath.Join(outDir, "notes.docx")
	assert.Equal(t, "Converted "+in+" to "+out+"\n", stdout)

	stdout, _, err = execute(t, "inspect", out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "title:\tNotes\n"), stdout)
	assert.Contains(t, stdout, "heading 1\tSection\n")
	assert.NotContains(t, stdout, "---")
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.md", "text\n")
	outDir := filepath.Join(dir, "from-config")
	cfg := writeFile(t, dir, "md2docx.yaml", "out_dir: "+outDir+"\nlog_level: error\n")

	_, stderr, err := execute(t, "--config", cfg, in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using config file:")
	assert.FileExists(t, filepath.Join(outDir, "notes.docx"))
}

func TestRootInputNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "version", "# Title\n")
	outDir := filepath.Join(dir, "out")
	t.Chdir(dir)

	stdout, _, err := execute(t, "--out-dir", outDir, "./version")
	require.NoError(t, err)
	assert.Equal(t, "Converted ./version to "+filepath.Join(outDir, "version")+"\n", stdout)

	contents, err := docx.ReadFile(filepath.Join(outDir, "version"))
	require.NoError(t, err)
	require.Len(t, contents.Paragraphs, 1)
	assert.Equal(t, "Title", contents.Paragraphs[0].Text)
}

func TestRootHelpMentionsSubcommandNames(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "./help")
}

func TestRootBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.md", "text\n")

	_, _, err := execute(t, "--log-format", "xml", in)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "notes.docx"))
}

func TestInspectRejectsNonDocx(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.md", "# Title\n")

	_, _, err := execute(t, "inspect", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a DOCX document")
}

func TestInspectOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "doc.md", "# Title\n### Sub\n* bullet\n\nSee [x](y) end\n")

	_, _, err := execute(t, in)
	require.NoError(t, err)

	stdout, _, err := execute(t, "inspect", filepath.Join(dir, "doc.docx"))
	require.NoError(t, err)
	assert.Equal(t,
		"creator:\tmd2docx\n"+
			"Title\tTitle\n"+
			"heading 2\tSub\n"+
			"List Bullet\tbullet\n"+
			"Normal\t\n"+
			"Normal\tSee  end\n",
		stdout)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "md2docx dev\n", stdout)
}
