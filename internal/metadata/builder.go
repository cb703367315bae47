package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/store"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// Document is the NFT metadata document uploaded once per post and shared by
// all of its editions
type Document struct {
	Name                 string     `json:"name"`
	Symbol               string     `json:"symbol"`
	Description          string     `json:"description"`
	Image                string     `json:"image"`
	SellerFeeBasisPoints int        `json:"seller_fee_basis_points"`
	Properties           Properties `json:"properties"`
}

// Properties describes the media files and creators of the document
type Properties struct {
	Files    []File    `json:"files"`
	Category string    `json:"category"`
	Creators []Creator `json:"creators"`
}

// File is a single media entry with its detected MIME type
type File struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

// Creator attributes royalty shares
type Creator struct {
	Address string `json:"address"`
	Share   int    `json:"share"`
}

// Uploader defines the interface to the metadata storage collaborator
//
//go:generate mockgen -source=builder.go -destination=../mocks/metadata.go -package=mocks -mock_names=Uploader=MockUploader,Resolver=MockMetadataResolver
type Uploader interface {
	// Upload stores a document and returns its public URI
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// Resolver resolves-or-builds the metadata URI for a post
type Resolver interface {
	// Resolve returns the post's metadata URI, building and uploading the
	// document on first use. The URI is persisted write-once; concurrent
	// builders converge on whichever upload was persisted first.
	Resolve(ctx context.Context, post *schema.Post, creator *schema.User) (string, error)
}

// Builder implements Resolver over the storage uploader
type Builder struct {
	store      store.Store
	httpClient adapter.HTTPClient
	uploader   Uploader
	json       adapter.JSON
}

// NewBuilder creates a new metadata builder
func NewBuilder(st store.Store, httpClient adapter.HTTPClient, uploader Uploader, jsonAdapter adapter.JSON) *Builder {
	return &Builder{
		store:      st,
		httpClient: httpClient,
		uploader:   uploader,
		json:       jsonAdapter,
	}
}

// Resolve returns the post's metadata URI, building it when absent
func (b *Builder) Resolve(ctx context.Context, post *schema.Post, creator *schema.User) (string, error) {
	if post.MetadataURI != nil && *post.MetadataURI != "" {
		return *post.MetadataURI, nil
	}

	doc, err := b.build(ctx, post, creator)
	if err != nil {
		return "", err
	}

	data, err := b.json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata document: %w", err)
	}

	uri, err := b.uploader.Upload(ctx, fmt.Sprintf("posts/%s/metadata.json", post.ID), "application/json", data)
	if err != nil {
		return "", fmt.Errorf("failed to upload metadata document: %w", err)
	}

	won, err := b.store.SetPostMetadataURI(ctx, post.ID, uri)
	if err != nil {
		return "", fmt.Errorf("failed to persist metadata URI: %w", err)
	}
	if !won {
		// Another attempt persisted its upload first; use that one
		current, err := b.store.GetPost(ctx, post.ID)
		if err != nil {
			return "", fmt.Errorf("failed to reload post after metadata race: %w", err)
		}
		if current == nil || current.MetadataURI == nil {
			return "", fmt.Errorf("post %s lost metadata URI race but has none persisted", post.ID)
		}
		logger.InfoCtx(ctx, "Metadata URI already persisted by a concurrent attempt",
			zap.String("post_id", post.ID.String()),
			zap.String("uri", *current.MetadataURI),
		)
		return *current.MetadataURI, nil
	}

	return uri, nil
}

// build composes the metadata document from the post's media
func (b *Builder) build(ctx context.Context, post *schema.Post, creator *schema.User) (*Document, error) {
	media, headerType, err := b.httpClient.GetRaw(ctx, post.MediaURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post media: %w", err)
	}

	// Prefer sniffed content over the server header; CDNs frequently report
	// application/octet-stream
	mediaType := mimetype.Detect(media).String()
	if mediaType == "application/octet-stream" && headerType != "" {
		mediaType = headerType
	}

	doc := &Document{
		Name:                 post.Title,
		Symbol:               "MURAL",
		Description:          post.Caption,
		Image:                post.MediaURI,
		SellerFeeBasisPoints: post.RoyaltyBps,
		Properties: Properties{
			Files:    []File{{URI: post.MediaURI, Type: mediaType}},
			Category: categoryFor(mediaType),
		},
	}
	if creator.WalletAddress != nil {
		doc.Properties.Creators = []Creator{{Address: *creator.WalletAddress, Share: 100}}
	}

	return doc, nil
}

// categoryFor maps a MIME type to the document category
func categoryFor(mediaType string) string {
	switch {
	case strings.HasPrefix(mediaType, "video/"):
		return "video"
	case strings.HasPrefix(mediaType, "audio/"):
		return "audio"
	default:
		return "image"
	}
}
