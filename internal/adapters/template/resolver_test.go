package template_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imagetool/internal/adapters/template"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newResolver(t *testing.T) *template.Resolver {
	t.Helper()

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return template.NewResolver(log)
}

func writeTemplate(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestResolver_Resolve(t *testing.T) {
	path := writeTemplate(t, "domain.yaml",
		"apiVersion: v8\n"+
			"domainHome=${DOMAIN_HOME}\n"+
			"image: ${IMAGE_NAME}\n")

	results, err := newResolver(t).Resolve([]string{path}, map[string]string{
		"DOMAIN_HOME": "/u01/domains/base_domain",
		"IMAGE_NAME":  "mydomain:latest",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"apiVersion: v8\n"+
			"domainHome=/u01/domains/base_domain\n"+
			"image: mydomain:latest\n",
		readFile(t, path))
	assert.Equal(t, []domain.ResolvedFile{{Path: path, Replacements: 2, Changed: true}}, results)
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	path := writeTemplate(t, "domain.yaml", "domainHome=${DOMAIN_HOME}\n")
	values := map[string]string{"DOMAIN_HOME": "/u01/domains/base_domain"}
	r := newResolver(t)

	_, err := r.Resolve([]string{path}, values)
	require.NoError(t, err)
	first := readFile(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)

	results, err := r.Resolve([]string{path}, values)
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, path))
	assert.False(t, results[0].Changed)
	assert.Zero(t, results[0].Replacements)

	again, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime(), "unchanged file must not be rewritten")
}

func TestResolver_Resolve_LeavesUnknownText(t *testing.T) {
	content := "a=${UNKNOWN}\r\nb=$DOMAIN_HOME\r\nc={DOMAIN_HOME}\r\nd=${DOMAIN_HOME}${DOMAIN_HOME}"
	path := writeTemplate(t, "mixed.txt", content)

	results, err := newResolver(t).Resolve([]string{path}, map[string]string{"DOMAIN_HOME": "/d"})
	require.NoError(t, err)

	assert.Equal(t, "a=${UNKNOWN}\r\nb=$DOMAIN_HOME\r\nc={DOMAIN_HOME}\r\nd=/d/d", readFile(t, path))
	assert.Equal(t, 2, results[0].Replacements)
}

func TestResolver_Resolve_SinglePass(t *testing.T) {
	path := writeTemplate(t, "chain.txt", "x=${A}\n")

	_, err := newResolver(t).Resolve([]string{path}, map[string]string{
		"A": "${B}",
		"B": "never",
	})
	require.NoError(t, err)
	assert.Equal(t, "x=${B}\n", readFile(t, path))
}

func TestResolver_Resolve_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not preserved on windows")
	}

	path := writeTemplate(t, "run.sh", "echo ${NAME}\n")
	require.NoError(t, os.Chmod(path, 0o750))

	_, err := newResolver(t).Resolve([]string{path}, map[string]string{"NAME": "x"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestResolver_Resolve_NoValues(t *testing.T) {
	path := writeTemplate(t, "plain.txt", "home=${DOMAIN_HOME}\n")

	results, err := newResolver(t).Resolve([]string{path}, nil)
	require.NoError(t, err)
	assert.False(t, results[0].Changed)
	assert.Equal(t, "home=${DOMAIN_HOME}\n", readFile(t, path))
}

func TestResolver_Resolve_MissingFileTouchesNothing(t *testing.T) {
	good := writeTemplate(t, "good.yaml", "home=${DOMAIN_HOME}\n")
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newResolver(t).Resolve([]string{good, missing}, map[string]string{"DOMAIN_HOME": "/d"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTemplateRead.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, missing, zErr.Metadata()["path"])

	assert.Equal(t, "home=${DOMAIN_HOME}\n", readFile(t, good), "earlier files must stay untouched")
}

func TestResolver_Resolve_FailedReplaceRestoresTargets(t *testing.T) {
	first := writeTemplate(t, "first.yaml", "home=${DOMAIN_HOME}\n")
	second := writeTemplate(t, "second.yaml", "image=${IMAGE_NAME}\n")

	reset := template.SetRename(func(oldpath, newpath string) error {
		if newpath == second {
			return errors.New("device busy")
		}
		return os.Rename(oldpath, newpath)
	})
	t.Cleanup(reset)

	_, err := newResolver(t).Resolve([]string{first, second}, map[string]string{
		"DOMAIN_HOME": "/u01/domains/base_domain",
		"IMAGE_NAME":  "mydomain:latest",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTemplateWrite.Error())

	assert.Equal(t, "home=${DOMAIN_HOME}\n", readFile(t, first), "replaced target must be restored")
	assert.Equal(t, "image=${IMAGE_NAME}\n", readFile(t, second))

	for _, dir := range []string{filepath.Dir(first), filepath.Dir(second)} {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files left in %s", dir)
	}
}

func TestResolver_Resolve_EmptyPath(t *testing.T) {
	_, err := newResolver(t).Resolve([]string{""}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidArgument.Error())
}
