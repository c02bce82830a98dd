package publish

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/s3/putoptions"
	"github.com/adampresley/themegen/pkg/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const htmlContentType = "text/html; charset=utf-8"

type Publisher interface {
	Publish(files Files) error
}

/*
Files is what a run produced. Index is empty when the index page was not
patched.
*/
type Files struct {
	Pages []string
	Index string
}

type PublisherConfig struct {
	AwsBucket string
	AwsRegion string
	Layout    models.SiteLayout
	Prefix    string
	S3Client  s3.S3Client
}

type PublisherService struct {
	awsBucket string
	awsRegion string
	layout    models.SiteLayout
	prefix    string
	s3Client  s3.S3Client
}

func NewPublisher(config PublisherConfig) PublisherService {
	return PublisherService{
		awsBucket: config.AwsBucket,
		awsRegion: config.AwsRegion,
		layout:    config.Layout,
		prefix:    strings.Trim(config.Prefix, "/"),
		s3Client:  config.S3Client,
	}
}

/*
Publish uploads the generated pages (and the patched index, if any) to the
bucket, then removes pages under the output folder's key prefix that this
run did not produce.
*/
func (p PublisherService) Publish(files Files) error {
	var (
		err error
		key string
	)

	slog.Info("publishing pages...", "bucket", p.awsBucket, "prefix", p.prefix, "numPages", len(files.Pages))

	if err = p.ensureBucketExists(p.awsBucket); err != nil {
		return err
	}

	keep := map[string]struct{}{}

	for _, page := range files.Pages {
		if key, err = p.upload(page); err != nil {
			return err
		}

		keep[key] = struct{}{}
	}

	if files.Index != "" {
		if _, err = p.upload(files.Index); err != nil {
			return err
		}
	}

	return p.pruneStalePages(keep)
}

func (p PublisherService) ensureBucketExists(bucketName string) error {
	var (
		err    error
		exists bool
	)

	exists, err = p.s3Client.BucketExists(bucketName)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", bucketName, err)
	}

	if exists {
		return nil
	}

	slog.Info("creating bucket", "bucketName", bucketName)

	err = p.s3Client.CreateBucket(
		bucketName,
		createbucketoptions.WithRegion(p.awsRegion),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", bucketName, err)
	}

	return nil
}

func (p PublisherService) upload(localPath string) (string, error) {
	var (
		err error
		key string
		f   *os.File
	)

	if key, err = p.objectKey(localPath); err != nil {
		return "", err
	}

	if f, err = os.Open(localPath); err != nil {
		return key, fmt.Errorf("error opening '%s' for upload: %w", localPath, err)
	}

	defer f.Close()

	stream, err := p.s3Client.PutStream(p.awsBucket, key, putoptions.WithContentType(htmlContentType))

	if err != nil {
		return key, fmt.Errorf("error setting up s3 stream for '%s': %w", key, err)
	}

	_, copyErr := io.Copy(stream.Writer, f)

	if err = stream.Writer.Close(); err != nil {
		return key, fmt.Errorf("error closing s3 stream writer for '%s': %w", key, err)
	}

	if _, err = stream.Wait(); err != nil {
		return key, fmt.Errorf("error uploading '%s' to S3: %w", key, err)
	}

	if copyErr != nil {
		return key, fmt.Errorf("error copying '%s' to S3: %w", localPath, copyErr)
	}

	slog.Info("uploaded page", "key", key)
	return key, nil
}

func (p PublisherService) pruneStalePages(keep map[string]struct{}) error {
	var (
		err      error
		response s3.ListResponse
		pagesKey string
	)

	pagesKey = ObjectKey(p.prefix, p.layout.PagesHref()) + "/"

	response, err = p.s3Client.List(
		p.awsBucket,
		pagesKey,
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			return strings.ToLower(path.Ext(aws.ToString(obj.Key))) == ".html"
		}),
	)

	if err != nil {
		return fmt.Errorf("error listing published pages under '%s': %w", pagesKey, err)
	}

	existing := make([]string, 0, len(response.Objects))

	for _, obj := range response.Objects {
		existing = append(existing, obj.Key)
	}

	stale := StaleKeys(existing, keep)

	if len(stale) == 0 {
		return nil
	}

	slog.Info("removing stale pages from S3", "keys", stale)

	if _, err = p.s3Client.Delete(p.awsBucket, stale); err != nil {
		return fmt.Errorf("error removing stale pages from S3: %w", err)
	}

	return nil
}

func (p PublisherService) objectKey(localPath string) (string, error) {
	rel, err := filepath.Rel(p.layout.RootDir, localPath)

	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file '%s' is not under the site root '%s'", localPath, p.layout.RootDir)
	}

	return ObjectKey(p.prefix, filepath.ToSlash(rel)), nil
}

// ObjectKey joins a bucket prefix and a slash separated relative path.
func ObjectKey(prefix, rel string) string {
	return strings.TrimPrefix(path.Join(prefix, rel), "/")
}

/*
StaleKeys returns the keys in existing that are not in keep, in their
original order.
*/
func StaleKeys(existing []string, keep map[string]struct{}) []string {
	result := []string{}

	for _, key := range existing {
		if _, ok := keep[key]; !ok {
			result = append(result, key)
		}
	}

	return result
}
