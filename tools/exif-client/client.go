package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"hash"
	"io/ioutil"
	"log"
	"net/http"
	"os"

	"crypto/sha256"

	"go.mozilla.org/hawk"
)

type extractionrequest struct {
	Input     string `json:"input"`
	Thumbnail bool   `json:"thumbnail,omitempty"`
}

type extractionresponse struct {
	Ref          string      `json:"ref"`
	Format       string      `json:"format"`
	LittleEndian bool        `json:"little_endian"`
	Digest       string      `json:"digest"`
	CacheHit     bool        `json:"cache_hit"`
	Fields       []fielddata `json:"fields"`
}

type fielddata struct {
	Tag       string `json:"tag"`
	Context   string `json:"context"`
	Number    uint16 `json:"number"`
	Type      string `json:"type"`
	Count     uint32 `json:"count"`
	Value     string `json:"value"`
	Thumbnail bool   `json:"thumbnail,omitempty"`
}

func main() {
	var (
		userid, pass, url string
		thumbnail         bool
	)
	flag.StringVar(&userid, "u", "alice", "User ID")
	flag.StringVar(&pass, "p", "fs5wgcer9qj819kfptdlp8gbtfsgwuc7", "Secret passphrase")
	flag.StringVar(&url, "t", "http://localhost:8080/extract", "extraction api URL")
	flag.BoolVar(&thumbnail, "T", false, "Include thumbnail fields in the output")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: exif-client [options] <image file> [<image file>...]")
	}

	extreqs := make([]extractionrequest, flag.NArg())
	for i, path := range flag.Args() {
		img, err := ioutil.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		extreqs[i] = extractionrequest{
			Input:     base64.StdEncoding.EncodeToString(img),
			Thumbnail: thumbnail,
		}
	}
	body, err := json.Marshal(extreqs)
	if err != nil {
		log.Fatal(err)
	}

	// prepare the http request, with hawk token
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	authheader := getAuthHeader(req, userid, pass, sha256.New, "", "application/json", body)
	req.Header.Set("Authorization", authheader)

	cli := &http.Client{}
	resp, err := cli.Do(req)
	if err != nil || resp == nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	respbody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("extraction failed with %s: %s", resp.Status, respbody)
	}

	var extresps []extractionresponse
	err = json.Unmarshal(respbody, &extresps)
	if err != nil {
		log.Fatal(err)
	}
	for i, extresp := range extresps {
		fmt.Printf("%s: %s, %d fields (digest %s)\n",
			flag.Arg(i), extresp.Format, len(extresp.Fields), extresp.Digest)
		for _, field := range extresp.Fields {
			fmt.Printf("  %-32s %-10s %s\n", field.Tag, field.Type, field.Value)
		}
	}
	os.Exit(0)
}

func getAuthHeader(req *http.Request, user, token string, hash func() hash.Hash, ext, contenttype string, payload []byte) string {
	auth := hawk.NewRequestAuth(req,
		&hawk.Credentials{
			ID:   user,
			Key:  token,
			Hash: hash},
		0)
	auth.Ext = ext
	payloadhash := auth.PayloadHash(contenttype)
	payloadhash.Write(payload)
	auth.SetHash(payloadhash)
	return auth.RequestHeader()
}
