// Package canonicalize provides RFC 8785 (JSON Canonicalization Scheme)
// serialization used to content-address archived event-buffer chunks
// before they are handed to an external ArchiveSink.
//
// Trimmed from the teacher's pkg/canonicalize: the artifact/schema-registry
// machinery (Canonicalize, generatePreview, content-type sniffing) isn't
// needed by this module's archive path, only the canonical-bytes + hash
// primitive is.
package canonicalize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JCS returns the RFC 8785 canonical JSON representation of v: marshal to
// JSON, then transform via gowebpki/jcs so map keys are sorted and numbers
// are formatted per the spec regardless of what json.Marshal happened to
// produce.
func JCS(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: marshal: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: jcs transform: %w", err)
	}
	return canonical, nil
}

// ComputeArtifactHash returns "sha256:" followed by the hex SHA-256 digest
// of canonical bytes,
// mirroring Mindburn-Labs-helm/core/pkg/canonicalize.ComputeArtifactHash.
func ComputeArtifactHash(data []byte) string {
	hash := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(hash[:])
}

// CanonicalHash is JCS followed by ComputeArtifactHash in one call.
func CanonicalHash(v interface{}) (string, error) {
	b, err := JCS(v)
	if err != nil {
		return "", err
	}
	return ComputeArtifactHash(b), nil
}
