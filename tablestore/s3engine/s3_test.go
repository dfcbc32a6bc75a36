package s3engine_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/s3engine"
	"github.com/aiswo/librarydesk/testutil/testdoubles"
)

type fakeS3Client struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	getErr       error
	putErr       error
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (c *fakeS3Client) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return nil, c.getErr
	}

	body, ok := c.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}

	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (c *fakeS3Client) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.putErr != nil {
		return nil, c.putErr
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	c.objects[key] = body
	c.contentTypes[key] = aws.ToString(in.ContentType)

	return &s3.PutObjectOutput{}, nil
}

func Test_NewBackend_RequiresClientAndBucket(t *testing.T) {
	_, err := s3engine.NewBackend(nil, "bucket")
	assert.ErrorIs(t, err, s3engine.ErrNilClient)

	_, err = s3engine.NewBackend(newFakeS3Client(), "")
	assert.ErrorIs(t, err, s3engine.ErrEmptyBucket)
}

func Test_Backend_Key_UsesPrefix(t *testing.T) {
	testCases := []struct {
		name    string
		prefix  string
		wantKey string
	}{
		{name: "no prefix", prefix: "", wantKey: "library_data.csv"},
		{name: "prefix without slash", prefix: "desk", wantKey: "desk/library_data.csv"},
		{name: "prefix with slash", prefix: "desk/", wantKey: "desk/library_data.csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			backend, err := s3engine.NewBackend(newFakeS3Client(), "bucket", s3engine.WithPrefix(tc.prefix))
			require.NoError(t, err)

			// act
			key, err := backend.Key("library_data")

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}

func Test_Backend_Key_RejectsInvalidNames(t *testing.T) {
	backend, err := s3engine.NewBackend(newFakeS3Client(), "bucket")
	require.NoError(t, err)

	_, err = backend.Key("")
	assert.ErrorIs(t, err, tablestore.ErrEmptyTableName)

	_, err = backend.Key("a/b")
	assert.ErrorIs(t, err, tablestore.ErrInvalidTableName)
}

func Test_Backend_Load_MissingObject(t *testing.T) {
	// arrange
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	backend, err := s3engine.NewBackend(newFakeS3Client(), "bucket", s3engine.WithMetrics(metricsSpy))
	require.NoError(t, err)

	// act
	_, err = backend.Load(context.Background(), "library_data")

	// assert
	assert.ErrorIs(t, err, tablestore.ErrTableNotFound)
	assert.True(t, metricsSpy.HasDurationRecord(tablestore.MetricLoadDuration, tablestore.StatusNotFound))
}

func Test_Backend_SaveThenLoad_RoundTrip(t *testing.T) {
	// arrange
	client := newFakeS3Client()
	backend, err := s3engine.NewBackend(client, "bucket", s3engine.WithPrefix("desk"))
	require.NoError(t, err)
	table := tablestore.BuildTable(
		[]string{"Full Name", "Class", "Date of Birth", "Address", "Phone Number", "Email"},
		tablestore.Row{"Ada Lovelace", "10B", "2010-12-10", "1 Main St, Springfield", "555-0100", "ada@example.org"},
	)

	// act
	require.NoError(t, backend.Save(context.Background(), "registration_newuser", table))
	loaded, err := backend.Load(context.Background(), "registration_newuser")

	// assert
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	assert.Equal(t, table.Rows, loaded.Rows)
	assert.Equal(t, "text/csv", client.contentTypes["bucket/desk/registration_newuser.csv"])
	assert.Contains(t, string(client.objects["bucket/desk/registration_newuser.csv"]), `"1 Main St, Springfield"`)
}

func Test_Backend_Load_ClientErrorIsWrapped(t *testing.T) {
	// arrange
	client := newFakeS3Client()
	client.getErr = errors.New("access denied")
	backend, err := s3engine.NewBackend(client, "bucket")
	require.NoError(t, err)

	// act
	_, err = backend.Load(context.Background(), "library_data")

	// assert
	assert.ErrorIs(t, err, client.getErr)
	assert.NotErrorIs(t, err, tablestore.ErrTableNotFound)
}

func Test_Backend_Load_MalformedObject(t *testing.T) {
	// arrange
	client := newFakeS3Client()
	client.objects["bucket/library_data.csv"] = []byte("A,B\n1\n")
	backend, err := s3engine.NewBackend(client, "bucket")
	require.NoError(t, err)

	// act
	_, err = backend.Load(context.Background(), "library_data")

	// assert
	assert.ErrorIs(t, err, tablestore.ErrMalformedTable)
}

func Test_Backend_Save_PutErrorIsWrapped(t *testing.T) {
	// arrange
	client := newFakeS3Client()
	client.putErr = errors.New("slow down")
	backend, err := s3engine.NewBackend(client, "bucket")
	require.NoError(t, err)

	// act
	err = backend.Save(context.Background(), "library_data", tablestore.BuildTable([]string{"BookID"}))

	// assert
	assert.ErrorIs(t, err, client.putErr)
}

func Test_Backend_Save_MalformedTableIsNotUploaded(t *testing.T) {
	// arrange
	client := newFakeS3Client()
	backend, err := s3engine.NewBackend(client, "bucket")
	require.NoError(t, err)
	table := tablestore.Table{Header: []string{"A", "B"}, Rows: []tablestore.Row{{"1"}}}

	// act
	err = backend.Save(context.Background(), "library_data", table)

	// assert
	assert.ErrorIs(t, err, tablestore.ErrMalformedTable)
	assert.Empty(t, client.objects)
}
