package s3

import (
	"testing"

	"unvaultd/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestBaseURL_MinIO(t *testing.T) {
	cfg := &config.Config{
		AWSEndpoint:  "http://localhost:9000/",
		S3UseSSL:     "false",
		S3BucketName: "unvaultd-media",
	}

	assert.Equal(t, "http://localhost:9000/unvaultd-media/", BaseURL(cfg))
}

func TestBaseURL_AWS(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:    "eu-west-1",
		S3BucketName: "unvaultd-media",
	}

	assert.Equal(t, "https://unvaultd-media.s3.eu-west-1.amazonaws.com/", BaseURL(cfg))
}

func TestBaseURL_DefaultRegion(t *testing.T) {
	cfg := &config.Config{S3BucketName: "b"}

	assert.Equal(t, "https://b.s3.us-east-1.amazonaws.com/", BaseURL(cfg))
}

func TestKeyFromURL(t *testing.T) {
	c := &Client{baseURL: "http://localhost:9000/unvaultd-media/"}

	assert.Equal(t, "post-images/u1/1-0.jpg", c.KeyFromURL("http://localhost:9000/unvaultd-media/post-images/u1/1-0.jpg"))
	assert.Equal(t, "", c.KeyFromURL("https://picsum.photos/800"))
}
