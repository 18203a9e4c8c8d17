package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage ingested documents",
	Long:  `List, inspect, or delete documents from the index.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ingested documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsGet,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsGetCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	docs, err := libraryService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Filename: %s\n", docs[i].Filename)
		cmd.Printf("    Chunks:   %d\n", docs[i].ChunkCount)
		cmd.Printf("    Uploaded: %s\n", docs[i].UploadedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsGet(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	doc, err := libraryService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Filename: %s\n", doc.Filename)
	cmd.Printf("  Size:     %d bytes\n", doc.SizeBytes)
	cmd.Printf("  Chunks:   %d\n", doc.ChunkCount)
	cmd.Printf("  Uploaded: %s\n", doc.UploadedAt.Format("2006-01-02 15:04:05"))

	if doc.ContentPreview != "" {
		cmd.Printf("\n  Preview:\n    %s\n", doc.ContentPreview)
	}

	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	if err := libraryService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
