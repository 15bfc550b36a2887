package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/calebcase/bitnum"
	"github.com/calebcase/bitnum/codec"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log at debug level",
	}
	decimalFlag = &cli.BoolFlag{
		Name:    "decimal",
		Aliases: []string{"d"},
		Usage:   "Print results in base 10 instead of grouped bits",
	}
	bitsFlag = &cli.IntFlag{
		Name:  "bits",
		Usage: "Schema width in bits for encoding and decoding (0 for minimal width)",
	}
)

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "bitnum"
	app.Usage = "Arbitrary-width binary number calculator"
	app.Flags = []cli.Flag{
		verboseFlag,
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool(verboseFlag.Name) {
			logrus.SetLevel(logrus.DebugLevel)
		}

		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "show",
			Usage:     "Print an operand in binary and decimal",
			ArgsUsage: "<operand>",
			Action:    show,
		},
		{
			Name:      "calc",
			Usage:     "Apply one of + - * / % & | << >>",
			ArgsUsage: "<a> <op> <b>",
			Flags:     []cli.Flag{decimalFlag},
			Action:    calc,
		},
		{
			Name:      "not",
			Usage:     "Complement every bit of an operand",
			ArgsUsage: "<operand>",
			Flags:     []cli.Flag{decimalFlag},
			Action:    not,
		},
		{
			Name:      "cmp",
			Usage:     "Compare two operands",
			ArgsUsage: "<a> <b>",
			Action:    cmp,
		},
		{
			Name:      "encode",
			Usage:     "Encode operands as BSV blocks and print them in hex",
			ArgsUsage: "<operand>...",
			Flags:     []cli.Flag{bitsFlag},
			Action:    encode,
		},
		{
			Name:      "decode",
			Usage:     "Decode hex BSV blocks and print each number",
			ArgsUsage: "<hex>",
			Flags:     []cli.Flag{bitsFlag, decimalFlag},
			Action:    decode,
		},
	}

	return app
}

func render(c *cli.Context, n bitnum.Number) string {
	if c.Bool(decimalFlag.Name) {
		return n.Text()
	}

	return n.String()
}

func operands(c *cli.Context, count int) (ns []bitnum.Number, err error) {
	if c.Args().Len() != count {
		return nil, Error.New("%s: expected %d operands, got %d", c.Command.Name, count, c.Args().Len())
	}

	for _, arg := range c.Args().Slice() {
		n, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}

		ns = append(ns, n)
	}

	return ns, nil
}

func show(c *cli.Context) error {
	ns, err := operands(c, 1)
	if err != nil {
		return err
	}

	n := ns[0]
	fmt.Fprintf(c.App.Writer, "bin:   %s\n", n)
	fmt.Fprintf(c.App.Writer, "dec:   %s\n", n.Text())
	fmt.Fprintf(c.App.Writer, "width: %d\n", n.BitWidth())

	return nil
}

func calc(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return Error.New("calc: expected <a> <op> <b>, got %d arguments", c.Args().Len())
	}

	a, err := parseOperand(c.Args().Get(0))
	if err != nil {
		return err
	}

	result, err := evaluate(a, c.Args().Get(1), c.Args().Get(2))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, render(c, result))

	return nil
}

func not(c *cli.Context) error {
	ns, err := operands(c, 1)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, render(c, ns[0].Not()))

	return nil
}

func cmp(c *cli.Context) error {
	ns, err := operands(c, 2)
	if err != nil {
		return err
	}

	a, b := ns[0], ns[1]
	fmt.Fprintf(c.App.Writer, "%s %s %s\n", a.Text(), relation(a.Cmp(b)), b.Text())

	return nil
}

func encode(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return Error.New("encode: expected at least one operand")
	}

	buf := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.Schema{Bits: c.Int(bitsFlag.Name)}, buf)

	for _, arg := range c.Args().Slice() {
		n, err := parseOperand(arg)
		if err != nil {
			return err
		}

		err = enc.Encode(n)
		if err != nil {
			return err
		}
	}

	log.WithField("bytes", buf.Len()).Debug("Encoded")
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(buf.Bytes()))

	return nil
}

func decode(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return Error.New("decode: expected one hex argument, got %d", c.Args().Len())
	}

	data, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return Error.Wrap(err)
	}

	dec := codec.NewDecoder(codec.Schema{Bits: c.Int(bitsFlag.Name)}, bytes.NewReader(data))

	for {
		n, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, render(c, n))
	}

	log.WithField("bytes", dec.Consumed()).Debug("Decoded")

	return nil
}
