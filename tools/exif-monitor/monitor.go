package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.mozilla.org/hawk"
	yaml "gopkg.in/yaml.v2"

	"github.com/imgmeta/exifd/exif"
)

// an extractionresponse is returned by exifd for each submitted image
type extractionresponse struct {
	Ref    string            `json:"ref"`
	Format string            `json:"format"`
	Digest string            `json:"digest"`
	Fields []json.RawMessage `json:"fields"`
}

type configuration struct {
	URL           string `yaml:"url"`
	MonitoringKey string `yaml:"monitoringkey"`
	ClientID      string `yaml:"clientid"`
	ClientKey     string `yaml:"clientkey"`
	CanaryBucket  string `yaml:"canarybucket"`
	CanaryObject  string `yaml:"canaryobject"`
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	confpath := os.Getenv("EXIF_MONITOR_CONF")
	if confpath == "" {
		confpath = "monitor.exifd.yaml"
	}
	conf, err := loadConf(confpath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	log.Println("Retrieving monitoring data from", conf.URL)
	req, err := http.NewRequest("GET", conf.URL+"__monitor__", nil)
	if err != nil {
		return err
	}
	// For client requests, setting this field prevents re-use of
	// TCP connections between requests to the same hosts, as if
	// Transport.DisableKeepAlives were set.
	req.Close = true

	auth := hawk.NewRequestAuth(req,
		&hawk.Credentials{
			ID:   "monitor",
			Key:  conf.MonitoringKey,
			Hash: sha256.New},
		0)
	payloadhash := auth.PayloadHash("")
	payloadhash.Write([]byte(""))
	auth.SetHash(payloadhash)
	req.Header.Set("Authorization", auth.RequestHeader())

	cli := &http.Client{}
	resp, err := cli.Do(req)
	if err != nil || resp == nil {
		return err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("monitoring endpoint failed with %s: %s", resp.Status, body)
	}
	log.Println("monitoring endpoint passed:", string(body))

	if conf.CanaryBucket != "" {
		err = checkCanaryExtraction(conf)
		if err != nil {
			return err
		}
	}
	return nil
}

// checkCanaryExtraction downloads a known image from S3 and submits it
// to the extraction endpoint, verifying that metadata comes back
func checkCanaryExtraction(conf configuration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awscfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load aws configuration: %v", err)
	}
	s3cli := s3.NewFromConfig(awscfg)
	obj, err := s3cli.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &conf.CanaryBucket,
		Key:    &conf.CanaryObject,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch canary s3://%s/%s: %v", conf.CanaryBucket, conf.CanaryObject, err)
	}
	defer obj.Body.Close()
	img, err := ioutil.ReadAll(obj.Body)
	if err != nil {
		return err
	}
	log.Printf("retrieved %d byte canary from s3://%s/%s", len(img), conf.CanaryBucket, conf.CanaryObject)

	// decode the canary locally to know what the service should find.
	// The service omits thumbnail fields unless asked for them.
	local, err := exif.Decode(img)
	if err != nil {
		return fmt.Errorf("failed to decode canary locally: %v", err)
	}
	localFields := 0
	for _, field := range local.Fields {
		if !field.Thumbnail {
			localFields++
		}
	}

	reqbody, err := json.Marshal([]map[string]string{
		{"input": base64.StdEncoding.EncodeToString(img)},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", conf.URL+"extract", bytes.NewReader(reqbody))
	if err != nil {
		return err
	}
	req.Close = true
	req.Header.Set("Content-Type", "application/json")

	auth := hawk.NewRequestAuth(req,
		&hawk.Credentials{
			ID:   conf.ClientID,
			Key:  conf.ClientKey,
			Hash: sha256.New},
		0)
	payloadhash := auth.PayloadHash("application/json")
	payloadhash.Write(reqbody)
	auth.SetHash(payloadhash)
	req.Header.Set("Authorization", auth.RequestHeader())

	cli := &http.Client{}
	resp, err := cli.Do(req)
	if err != nil || resp == nil {
		return err
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("canary extraction failed with %s: %s", resp.Status, body)
	}
	var extresps []extractionresponse
	err = json.Unmarshal(body, &extresps)
	if err != nil {
		return err
	}
	if len(extresps) != 1 {
		return fmt.Errorf("expected 1 canary response, got %d", len(extresps))
	}
	if len(extresps[0].Fields) != localFields {
		return fmt.Errorf("canary extraction returned %d fields, expected %d",
			len(extresps[0].Fields), localFields)
	}
	if extresps[0].Format != local.Format {
		return fmt.Errorf("canary extraction returned format %q, expected %q",
			extresps[0].Format, local.Format)
	}
	log.Printf("canary extraction passed: %s, %d fields", extresps[0].Format, len(extresps[0].Fields))
	return nil
}

func loadConf(path string) (cfg configuration, err error) {
	log.Println("loading configuration from", path)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, &cfg)
	return
}
