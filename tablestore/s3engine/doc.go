// Package s3engine provides an S3 implementation of tablestore.Backend.
//
// Each logical table is one CSV object named "<prefix><table>.csv" in a bucket. Save uploads the
// whole object with a single PutObject, which S3 applies atomically, so readers never observe a
// partially written table. A missing object is reported as tablestore.ErrTableNotFound.
package s3engine
