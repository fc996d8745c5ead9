package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"

	"github.com/vickyqiu/riak-pb/catalog"
	"github.com/vickyqiu/riak-pb/config"
	viperprovider "github.com/vickyqiu/riak-pb/config/provider/viper"
	"github.com/vickyqiu/riak-pb/gen"
	icli "github.com/vickyqiu/riak-pb/internal/cli"
	"github.com/vickyqiu/riak-pb/logger"
	"github.com/vickyqiu/riak-pb/protodef"
	"github.com/vickyqiu/riak-pb/utils"
)

const (
	defaultSource      = "src/riak_pb_messages.csv"
	defaultDestination = "riakpb/messages.go"
	defaultManifest    = "src/riak_pb_protos.json"
	defaultResolver    = "proto"
)

// loadConfig layers an optional .pbgen.yaml in the working directory over
// the built-in defaults. Flags still win over both.
func loadConfig() *config.Config {
	defaults := map[string]interface{}{
		"source":      defaultSource,
		"destination": defaultDestination,
		"manifest":    defaultManifest,
		"resolver":    defaultResolver,
	}

	v := viper.New()
	v.SetConfigName(".pbgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		return config.New(defaults)
	}

	return config.New(defaults, viperprovider.NewViperProvider(v))
}

func generateCmd(conf *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate protocol message code mappings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Usage:   "source CSV file containing message code mappings",
				Aliases: []string{"s"},
				Value:   conf.StrOr("source", defaultSource),
			},
			destinationFlag(conf),
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "protocol family manifest file",
				Value: conf.StrOr("manifest", defaultManifest),
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package name of the generated file",
				Value: conf.Str("package"),
			},
			&cli.StringFlag{
				Name:  "resolver",
				Usage: "class resolver to use (proto, linked)",
				Value: conf.StrOr("resolver", defaultResolver),
			},
			&cli.StringSliceFlag{
				Name:    "message",
				Usage:   "append an inline descriptor, format <code>:<name>:<family>",
				Aliases: []string{"m"},
				Action: func(c *cli.Context, vals []string) error {
					for _, v := range vals {
						if err := icli.CheckMessage(v); err != nil {
							return err
						}
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "regenerate even when the destination is up to date",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "verbose output",
				Aliases: []string{"v"},
			},
		},
		Action: runGenerate,
	}
}

func cleanCmd(conf *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "clean generated protocol message code mappings",
		Flags: []cli.Flag{
			destinationFlag(conf),
		},
		Action: func(c *cli.Context) error {
			return gen.Clean(c.String("destination"))
		},
	}
}

func destinationFlag(conf *config.Config) cli.Flag {
	return &cli.StringFlag{
		Name:    "destination",
		Usage:   "destination Go source file",
		Aliases: []string{"d"},
		Value:   conf.StrOr("destination", defaultDestination),
	}
}

func runGenerate(c *cli.Context) error {
	if c.Bool("verbose") {
		logger.Verbose()
		logger.SetLogger(logger.Cli)
	}

	var (
		source   = c.String("source")
		dest     = c.String("destination")
		manifest = c.String("manifest")
	)

	if !c.Bool("overwrite") && !gen.Stale(dest, source, manifest) {
		logger.Cli.Info("destination up to date", zap.String("destination", dest))
		return nil
	}

	m, err := protodef.LoadManifest(manifest)
	if err != nil {
		return err
	}

	resolver, err := protodef.Build(c.String("resolver"), m)
	if err != nil {
		return err
	}

	descs, err := catalog.LoadFile(source, resolver)
	if err != nil {
		return err
	}

	for _, s := range c.StringSlice("message") {
		msg, err := icli.ParseMessage(s)
		if err != nil {
			return err
		}
		descs = append(descs, catalog.NewMessageDescriptor(msg.Code, msg.Name, msg.Proto, resolver))
	}

	g := gen.New(packageFor(c.String("package"), dest))
	if err := g.Run(catalog.Compile(descs), &gen.Output{
		Path:      dest,
		Verbose:   c.Bool("verbose"),
		Overwrite: true,
	}); err != nil {
		return err
	}

	logger.Cli.Info("generated message code mappings",
		zap.String("destination", dest), zap.Int("messages", len(descs)))
	return nil
}

// packageFor derives the emitted package name: the flag when given, then
// the destination's directory name, then the module name from the
// enclosing go.mod when the artifact lands at the module root.
func packageFor(flagPkg, dest string) string {
	if flagPkg != "" {
		return flagPkg
	}

	if base := filepath.Base(filepath.Dir(dest)); base != "." && base != "/" {
		return utils.SnakeCase(base)
	}

	if mod, err := moduleName("."); err == nil {
		return utils.SnakeCase(path.Base(mod))
	}

	return "riakpb"
}

func moduleName(dir string) (string, error) {
	content, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}

	f, err := modfile.Parse("go.mod", content, nil)
	if err != nil {
		return "", err
	}

	return f.Module.Mod.Path, nil
}
