package indexing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubConfig map[string]string

func (c stubConfig) Get(key string) string { return c[key] }

func TestClassifyOptimalByDefault(t *testing.T) {
	rel := newStub(3, BTree)
	require.Equal(t, NotNaive, Classify(rel, nil, false))
}

func TestClassifyNaiveByStorage(t *testing.T) {
	rel := newStub(3, Hashset)
	require.Equal(t, NaiveByStorage, Classify(rel, nil, false))
}

func TestClassifyNaiveByConfigOverride(t *testing.T) {
	rel := newStub(3, BTree)
	cfg := stubConfig{DataStructureConfigKey: "hashset"}
	require.Equal(t, NaiveByStorage, Classify(rel, cfg, false))
}

func TestClassifyNaiveByEnv(t *testing.T) {
	rel := newStub(3, BTree)
	require.Equal(t, NaiveByEnv, Classify(rel, nil, true))
}

func TestClassifyStorageWinsOverEnvForWarningPurposes(t *testing.T) {
	rel := newStub(3, Hashset)
	require.Equal(t, NaiveByStorage, Classify(rel, nil, true))
}

func TestClassifyEnvReadsProcessEnvironment(t *testing.T) {
	rel := newStub(3, BTree)
	t.Setenv(NaiveIndexEnvVar, "")
	require.Equal(t, NotNaive, ClassifyEnv(rel, nil))

	t.Setenv(NaiveIndexEnvVar, "1")
	require.Equal(t, NaiveByEnv, ClassifyEnv(rel, nil))
}
