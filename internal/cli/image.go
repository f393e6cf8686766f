package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"textsteg/pkg/config"
	"textsteg/pkg/steg"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const noMessageFound = "No hidden message found."

var (
	ErrMissingData = errors.New("please select an image, enter text, and choose an output path")
)

func ImageCommands(rOpts *rootOpts) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "textsteg image encode --image source.png --output-file output.png --text \"meet at noon\"",
	}

	imageCmd.AddCommand(encodeImageCommand(rOpts), decodeTextFromImageCommand(rOpts), imageCapacityCommand())
	return imageCmd
}

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	text           string
	textFile       string
	outputFormat   string
	pngCompression string
	terminator     string
}

// toEncodeConfig layers the flags that were explicitly set over the config file
func (o encodeImageOpts) toEncodeConfig(cmd *cobra.Command, fileConfig config.FileConfig) (config.ImageEncodeConfig, error) {
	if cmd.Flags().Changed("format") {
		fileConfig.OutputFormat = o.outputFormat
	}
	if cmd.Flags().Changed("png-compression") {
		fileConfig.PngCompression = o.pngCompression
	}
	if cmd.Flags().Changed("terminator") {
		fileConfig.Terminator = o.terminator
	}
	return fileConfig.EncodeConfig()
}

func encodeImageCommand(rOpts *rootOpts) *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "textsteg image encode --image source.png --output-file output.png --text \"meet at noon\"",
		Short:   "Hide text in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := opts.readText(cmd)
			if err != nil {
				return err
			}
			if opts.sourceImage == "" || opts.outputImage == "" || text == "" {
				return ErrMissingData
			}

			encodeConfig, err := opts.toEncodeConfig(cmd, rOpts.fileConfig)
			if err != nil {
				return err
			}
			outputPath, encodeConfig, err := resolveOutputPath(opts.outputImage, encodeConfig, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			s := NewSpinner()
			s.Prefix = "Embedding text "
			s.Start()
			stats, err := steg.EmbedFile(opts.sourceImage, text, outputPath, encodeConfig)
			s.Stop()
			if err != nil {
				return err
			}

			rOpts.logger.With("stats", stats).Debug("Image encoding was successful")
			fmt.Fprintf(cmd.OutOrStdout(), "Message embedded successfully! Saved as %s\n", outputPath)
			return nil
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the text in (it will not be modified)")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded image that will be generated. The format is picked from the extension, and png is used when there is none")
	encImgCmd.Flags().StringVar(&opts.text, "text", "", "Text to hide")
	encImgCmd.Flags().StringVar(&opts.textFile, "text-file", "", "File whose content is the text to hide, use - for stdin")
	encImgCmd.Flags().StringVar(&opts.outputFormat, "format", string(config.OutputPNG), "Lossless format for the output image. Options are png, bmp, tiff")
	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	encImgCmd.Flags().StringVar(&opts.terminator, "terminator", string(config.TerminatorStrict), "End of message handling. strict allows any character but U+00FF followed by U+00FE, legacy forbids U+00FF")

	MarkFlagsRequired(encImgCmd, "image", "output-file")
	encImgCmd.MarkFlagsMutuallyExclusive("text", "text-file")

	return encImgCmd
}

func (o encodeImageOpts) readText(cmd *cobra.Command) (string, error) {
	var (
		raw []byte
		err error
	)
	switch o.textFile {
	case "":
		return o.text, nil
	case "-":
		raw, err = io.ReadAll(cmd.InOrStdin())
	default:
		raw, err = os.ReadFile(o.textFile)
	}
	return string(raw), err
}

// resolveOutputPath appends the format extension when the output has none, and otherwise lets a known extension pick
// the format unless one was requested explicitly
func resolveOutputPath(outputPath string, encodeConfig config.ImageEncodeConfig, formatRequested bool) (string, config.ImageEncodeConfig, error) {
	ext := filepath.Ext(outputPath)
	if ext == "" {
		return outputPath + encodeConfig.OutputFormat.Extension(), encodeConfig, nil
	}

	format, err := config.ParseOutputFormat(ext)
	if err != nil {
		if formatRequested {
			return outputPath, encodeConfig, nil
		}
		return "", encodeConfig, fmt.Errorf("output file %s: %w", outputPath, err)
	}
	if !formatRequested {
		encodeConfig.OutputFormat = format
	}
	return outputPath, encodeConfig, nil
}

func decodeTextFromImageCommand(rOpts *rootOpts) *cobra.Command {
	var (
		encodedImageFile string
		outputFile       string
		terminator       string
	)

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "textsteg image decode --source encoded-image.png",
		Short:   "Reveal the text hidden in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileConfig := rOpts.fileConfig
			if cmd.Flags().Changed("terminator") {
				fileConfig.Terminator = terminator
			}
			decodeConfig, err := fileConfig.DecodeConfig()
			if err != nil {
				return err
			}

			message, stats, err := steg.DecodeFile(encodedImageFile, decodeConfig)
			if err != nil {
				return err
			}
			rOpts.logger.With("stats", stats, "terminated", message.Terminated).Debug("Image decoding was successful")

			if !message.Found() || message.Text == "" {
				fmt.Fprintln(cmd.OutOrStdout(), noMessageFound)
				return nil
			}
			if outputFile != "" {
				return os.WriteFile(outputFile, []byte(message.Text), 0664)
			}
			fmt.Fprintln(cmd.OutOrStdout(), message.Text)
			return nil
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image to reveal the text from")
	decodeCommand.Flags().StringVar(&outputFile, "output-file", "", "Write the decoded text to this file instead of stdout")
	decodeCommand.Flags().StringVar(&terminator, "terminator", string(config.TerminatorStrict), "End of message handling, must match the mode used when encoding. Options are strict, legacy")
	MarkFlagsRequired(decodeCommand, "source")
	return decodeCommand
}

func imageCapacityCommand() *cobra.Command {
	var sourceImage string

	capacityCommand := &cobra.Command{
		Use:     "capacity",
		Example: "textsteg image capacity --image source.png",
		Short:   "Show how much text fits in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := steg.ImageCapacity(sourceImage)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d) can hold %s characters (%s of text)\n",
				sourceImage, capacity.Width, capacity.Height,
				humanize.Comma(int64(capacity.MaxCharacters)), humanize.Bytes(uint64(capacity.MaxCharacters)))
			return nil
		},
	}

	capacityCommand.Flags().StringVar(&sourceImage, "image", "", "Image to measure")
	MarkFlagsRequired(capacityCommand, "image")
	return capacityCommand
}
