package storage

import (
	"io"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Options struct {
	Bucket   string
	Region   string
	Endpoint string // for S3 compatible providers
	Key      string
	Secret   string
	Prefix   string
}

type S3Storage struct {
	opts     S3Options
	s3Client *s3.S3
}

func NewS3Storage(opts S3Options) (*S3Storage, error) {
	awsConfig := &aws.Config{
		Region: aws.String(opts.Region),
	}
	if opts.Key != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(opts.Key, opts.Secret, "")
	}
	if opts.Endpoint != "" {
		awsConfig.Endpoint = aws.String(opts.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}
	return &S3Storage{opts: opts, s3Client: s3.New(sess)}, nil
}

func (s *S3Storage) remotePath(p string) string {
	return path.Join(s.opts.Prefix, path.Base(p))
}

func (s *S3Storage) Save(p string, reader io.Reader) (int64, error) {
	counter := &countingReader{Reader: reader}
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.remotePath(p)),
		Body:   counter,
	})
	return counter.n, err
}

// Serve redirects to a short-lived presigned URL
func (s *S3Storage) Serve(p string, request *http.Request, writer http.ResponseWriter) error {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.remotePath(p)),
	})
	url, err := req.Presign(15 * time.Minute)
	if err != nil {
		return err
	}
	http.Redirect(writer, request, url, http.StatusFound)
	return nil
}

func (s *S3Storage) Exists(p string) bool {
	_, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.remotePath(p)),
	})
	return err == nil
}

func (s *S3Storage) Delete(p string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.remotePath(p)),
	})
	return err
}

type countingReader struct {
	io.Reader
	n int64
}

func (r *countingReader) Read(b []byte) (int, error) {
	n, err := r.Reader.Read(b)
	r.n += int64(n)
	return n, err
}
