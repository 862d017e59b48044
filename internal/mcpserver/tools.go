package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	mcpSubsystem = "MCP"

	// MaxPaletteSize bounds generate_palette's count argument.
	MaxPaletteSize = 64
)

// PaletteTools provides the MCP tools backed by a generator and a clipboard.
type PaletteTools struct {
	generator *color.Generator
	clipboard clipboard.Writer
}

// NewPaletteTools creates the palette tools
func NewPaletteTools(generator *color.Generator, writer clipboard.Writer) *PaletteTools {
	return &PaletteTools{
		generator: generator,
		clipboard: writer,
	}
}

// GetTools returns all palette tool definitions
func (pt *PaletteTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		pt.generatePaletteTool(),
		pt.contrastTextColorTool(),
		pt.copyColorTool(),
	}
}

// ServerTools pairs every tool with its handler.
func (pt *PaletteTools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: pt.generatePaletteTool(), Handler: pt.HandleGeneratePalette},
		{Tool: pt.contrastTextColorTool(), Handler: pt.HandleContrastTextColor},
		{Tool: pt.copyColorTool(), Handler: pt.HandleCopyColor},
	}
}

func (pt *PaletteTools) generatePaletteTool() mcp.Tool {
	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Generate random colors with their HEX, RGB and HSL codes and a readable text color"),
		mcp.WithNumber("count",
			mcp.Description(fmt.Sprintf("Number of colors to generate (0-%d, default %d)", MaxPaletteSize, color.DefaultPaletteSize)),
			mcp.DefaultNumber(color.DefaultPaletteSize),
			mcp.Min(0),
			mcp.Max(MaxPaletteSize),
		),
	)
}

func (pt *PaletteTools) contrastTextColorTool() mcp.Tool {
	return mcp.NewTool("contrast_text_color",
		mcp.WithDescription("Pick black or white text for a background color, by perceived brightness"),
		mcp.WithString("hex",
			mcp.Required(),
			mcp.Description("Background color as #RRGGBB or RRGGBB"),
		),
	)
}

func (pt *PaletteTools) copyColorTool() mcp.Tool {
	return mcp.NewTool("copy_color",
		mcp.WithDescription("Copy a color's HEX code to the system clipboard"),
		mcp.WithString("hex",
			mcp.Required(),
			mcp.Description("Color as #RRGGBB or RRGGBB; it is copied in #RRGGBB uppercase form"),
		),
	)
}

// HandleGeneratePalette handles the generate_palette tool call
func (pt *PaletteTools) HandleGeneratePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := req.GetInt("count", color.DefaultPaletteSize)
	if count < 0 || count > MaxPaletteSize {
		return mcp.NewToolResultError(fmt.Sprintf("count must be between 0 and %d, got %d", MaxPaletteSize, count)), nil
	}

	palette := pt.generator.Palette(count)
	logging.Debug(mcpSubsystem, "generate_palette produced %d colors", len(palette))

	resultJSON, err := json.MarshalIndent(color.DescribeAll(palette), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode palette: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// HandleContrastTextColor handles the contrast_text_color tool call
func (pt *PaletteTools) HandleContrastTextColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := parseHexArgument(req)
	if errResult != nil {
		return errResult, nil
	}

	result := struct {
		color.Description
		Brightness float64 `json:"brightness"`
	}{
		Description: color.Describe(c),
		Brightness:  color.Brightness(c),
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// HandleCopyColor handles the copy_color tool call
func (pt *PaletteTools) HandleCopyColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := parseHexArgument(req)
	if errResult != nil {
		return errResult, nil
	}

	if err := pt.clipboard.WriteText(ctx, c.Hex()); err != nil {
		logging.Error(mcpSubsystem, err, "copy_color failed for %s", c.Hex())
		return mcp.NewToolResultError(fmt.Sprintf("Failed to copy %s: %v", c.Hex(), err)), nil
	}

	logging.Info(mcpSubsystem, "Copied %s to clipboard", c.Hex())
	return mcp.NewToolResultText(fmt.Sprintf("Copied %s to clipboard", c.Hex())), nil
}

func parseHexArgument(req mcp.CallToolRequest) (color.Color, *mcp.CallToolResult) {
	hex, err := req.RequireString("hex")
	if err != nil {
		return color.Color{}, mcp.NewToolResultError("hex is required")
	}
	c, err := color.ParseHex(hex)
	if err != nil {
		return color.Color{}, mcp.NewToolResultError(err.Error())
	}
	return c, nil
}
