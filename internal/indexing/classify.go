package indexing

import "os"

// NaiveIndexEnvVar is the debug escape hatch that forces every relation onto
// the naive one-index-per-search path, regardless of declared storage.
const NaiveIndexEnvVar = "SOUFFLE_USE_NAIVE_INDEX"

// DataStructureConfigKey is the global config key whose value "hashset"
// forces naive indexing for every relation, independent of each relation's
// own declared storage kind.
const DataStructureConfigKey = "data-structure"

// Classify decides whether rel should use the naive one-index-per-search
// path or the optimal chain-cover reduction. It is pure with respect to the
// process environment: env is passed in explicitly (rather than read via
// os.Getenv inside Classify) so tests do not need to mutate process state to
// exercise both branches; ClassifyEnv below is the convenience wrapper that
// reads the real environment.
func Classify(rel RelationDescriptor, cfg GlobalConfig, envNaiveForced bool) NaiveReason {
	if envNaiveForced {
		// The storage-implied naive branch wins over the env override for
		// warning purposes: if storage already made the relation naive,
		// forcing it again via the environment changes nothing observable,
		// so storage takes priority when both apply.
		if isHashBased(rel, cfg) {
			return NaiveByStorage
		}
		return NaiveByEnv
	}
	if isHashBased(rel, cfg) {
		return NaiveByStorage
	}
	return NotNaive
}

// ClassifyEnv is Classify with the environment variable escape hatch read
// from the real process environment.
func ClassifyEnv(rel RelationDescriptor, cfg GlobalConfig) NaiveReason {
	return Classify(rel, cfg, os.Getenv(NaiveIndexEnvVar) != "")
}

func isHashBased(rel RelationDescriptor, cfg GlobalConfig) bool {
	if rel.StorageKind() == Hashset {
		return true
	}
	if cfg != nil && cfg.Get(DataStructureConfigKey) == "hashset" {
		return true
	}
	return false
}
