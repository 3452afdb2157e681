package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/mutation"
	"github.com/hsiehdog/havenmind-front/internal/querycache"
)

var (
	uploadPath string
	viewID     string
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List Home Journal documents, upload a file, or open a view link",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		docs, err := client.FetchDocuments(ctx)
		if err != nil {
			return err
		}
		cache.Write(querycache.KeyDocuments, docs)

		if uploadPath != "" {
			file, err := os.Open(uploadPath)
			if err != nil {
				return err
			}
			defer file.Close()

			info, err := file.Stat()
			if err != nil {
				return err
			}

			controller := mutation.NewUploadController(client, cache)
			doc, err := controller.Upload(ctx, api.DocumentUpload{
				Filename: filepath.Base(uploadPath),
				MimeType: mimeTypeFor(uploadPath),
				Size:     info.Size(),
				Body:     file,
			})
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			fmt.Printf("Uploaded %s (%s)\n", doc.OriginalName, doc.Status)
		}

		if viewID != "" {
			tracker := mutation.NewViewLinkTracker(client)
			url, err := tracker.Open(ctx, viewID)
			if err != nil {
				return err
			}
			if url == "" {
				fmt.Println(tracker.State(viewID).Advisory)
			} else {
				fmt.Println(url)
			}
		}

		cached, _ := querycache.ReadSlice[api.UserDocument](cache, querycache.KeyDocuments)
		for _, doc := range cached {
			fmt.Printf("  %s  %s  %s  %s  %s\n",
				doc.ID,
				doc.OriginalName,
				humanize.Bytes(uint64(doc.Size)),
				labelStyle.Render(doc.MimeType),
				strings.ToLower(string(doc.Status)),
			)
		}
		return nil
	},
}

func mimeTypeFor(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func init() {
	documentsCmd.Flags().StringVar(&uploadPath, "upload", "", "path of a file to upload")
	documentsCmd.Flags().StringVar(&viewID, "view", "", "document ID to fetch a view link for")
	rootCmd.AddCommand(documentsCmd)
}
