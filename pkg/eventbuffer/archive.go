package eventbuffer

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mindburn-labs/ledgercore/pkg/canonicalize"
)

// ArchivedRecord is one (offset, entry) pair handed to an ArchiveSink when
// FlushArchiving drops it from the buffer.
type ArchivedRecord[O cmp.Ordered, E any] struct {
	Offset O
	Entry  E
}

// ArchiveSink receives the entries a flush is about to discard. It is an
// export hook only — the buffer never reads back from a sink to rehydrate
// itself, so wiring one does not reintroduce the "persistence across
// restarts" the core spec excludes (spec §1, Non-goals).
type ArchiveSink[O cmp.Ordered, E any] interface {
	Archive(records []ArchivedRecord[O, E]) error
}

// S3ArchiveSink uploads a flushed chunk as a single canonical-JSON object,
// content-addressed by its JCS hash (canonicalize.JCS followed by
// canonicalize.ComputeArtifactHash).
type S3ArchiveSink[O cmp.Ordered, E any] struct {
	client *s3.Client
	bucket string
	prefix string
	clock  func() time.Time
}

// NewS3ArchiveSink constructs an archive sink backed by an S3 bucket.
func NewS3ArchiveSink[O cmp.Ordered, E any](client *s3.Client, bucket, prefix string) *S3ArchiveSink[O, E] {
	return &S3ArchiveSink[O, E]{client: client, bucket: bucket, prefix: prefix, clock: time.Now}
}

func (s *S3ArchiveSink[O, E]) Archive(records []ArchivedRecord[O, E]) error {
	if len(records) == 0 {
		return nil
	}

	canonicalBytes, err := canonicalize.JCS(records)
	if err != nil {
		return fmt.Errorf("eventbuffer: canonicalize archive chunk: %w", err)
	}
	digest := canonicalize.ComputeArtifactHash(canonicalBytes)

	payload, err := json.Marshal(struct {
		Digest    string      `json:"digest"`
		Records   interface{} `json:"records"`
		FlushedAt time.Time   `json:"flushed_at"`
	}{Digest: digest, Records: records, FlushedAt: s.clock()})
	if err != nil {
		return fmt.Errorf("eventbuffer: marshal archive payload: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.prefix, digest)
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(payload),
	})
	if err != nil {
		return fmt.Errorf("eventbuffer: s3 put object: %w", err)
	}
	return nil
}
