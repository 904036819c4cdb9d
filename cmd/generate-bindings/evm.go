package generatebindings

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/cmd/generate-bindings/evm"
	"github.com/klaybind/klaybind/cmd/version"
	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
)

var packageNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func resolveEvmInputs(args []string, v *viper.Viper) (EvmInputs, error) {
	// Get current working directory as default project root
	currentDir, err := os.Getwd()
	if err != nil {
		return EvmInputs{}, fmt.Errorf("failed to get current working directory: %w", err)
	}

	// Resolve project root with fallback to current directory
	projectRoot := v.GetString("project-root")
	if projectRoot == "" {
		projectRoot = currentDir
	}

	contractsPath := filepath.Join(projectRoot, constants.DefaultContractsDir)
	if _, err := os.Stat(contractsPath); err != nil {
		return EvmInputs{}, fmt.Errorf("contracts folder not found in project root: %s", contractsPath)
	}

	chainFamily := ""
	if len(args) > 0 {
		chainFamily = args[0]
	}

	combinedJSON := v.GetString("combined-json")

	// Resolve ABI path with fallback to contracts/{chainFamily}/src/abi/
	abiPath := v.GetString("abi")
	if abiPath == "" && combinedJSON == "" {
		abiPath = filepath.Join(contractsPath, chainFamily, "src", "abi")
	}

	// Output path is contracts/{chainFamily}/src/generated/ under projectRoot
	outPath := filepath.Join(contractsPath, chainFamily, "src", "generated")

	return EvmInputs{
		ProjectRoot:  projectRoot,
		ChainFamily:  chainFamily,
		Language:     v.GetString("language"),
		AbiPath:      abiPath,
		CombinedJSON: combinedJSON,
		TypeName:     v.GetString("type"),
		PkgName:      v.GetString("pkg"),
		OutPath:      outPath,
		SkipDeps:     v.GetBool("skip-deps"),
	}, nil
}

func validateEvmInputs(inputs EvmInputs) error {
	validate, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	if err = validate.Struct(inputs); err != nil {
		return validate.ParseValidationErrors(err)
	}

	if inputs.PkgName != "" && !packageNamePattern.MatchString(inputs.PkgName) {
		return fmt.Errorf("invalid package name %q: use lowercase letters, digits and underscores", inputs.PkgName)
	}

	if inputs.CombinedJSON != "" {
		return nil
	}

	// Additional validation for ABI path
	info, err := os.Stat(inputs.AbiPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("ABI path does not exist: %s", inputs.AbiPath)
		}
		return fmt.Errorf("failed to access ABI path: %w", err)
	}

	// Validate that if AbiPath is a directory, it contains .abi files
	if info.IsDir() {
		files, err := filepath.Glob(filepath.Join(inputs.AbiPath, "*.abi"))
		if err != nil {
			return fmt.Errorf("failed to check for ABI files in directory: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no .abi files found in directory: %s", inputs.AbiPath)
		}
		if inputs.PkgName != "" || inputs.TypeName != "" {
			return fmt.Errorf("--pkg and --type apply to a single contract, pass an .abi file or --combined-json")
		}
		return nil
	}

	artifact := abiArtifact{Abi: inputs.AbiPath}
	binPath := strings.TrimSuffix(inputs.AbiPath, filepath.Ext(inputs.AbiPath)) + ".bin"
	if _, err := os.Stat(binPath); err == nil {
		artifact.Bin = binPath
	}
	if err := validate.Struct(artifact); err != nil {
		return validate.ParseValidationErrors(err)
	}

	return nil
}

// contractNameToPackage converts contract names to valid Go package names
// Examples: IERC20 -> ierc20, ReserveManager -> reserve_manager, IReserveManager -> ireserve_manager
func contractNameToPackage(contractName string) string {
	if contractName == "" {
		return ""
	}

	var result []rune
	runes := []rune(contractName)

	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			lower := r - 'A' + 'a'

			// Underscore at a camel case boundary or where an acronym ends ("IReserve" -> "i_reserve"
			// is avoided because the acronym has a single letter at the start).
			if i > 0 {
				prevIsUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
				nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

				if !prevIsUpper || (prevIsUpper && nextIsLower && i > 1) {
					result = append(result, '_')
				}
			}

			result = append(result, lower)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}

// binding is one generation job.
type binding struct {
	opts    evm.Options
	outFile string
}

func (h *handler) planDirectory() ([]binding, error) {
	files, err := filepath.Glob(filepath.Join(h.inputs.AbiPath, "*.abi"))
	if err != nil {
		return nil, fmt.Errorf("failed to find ABI files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no .abi files found in directory: %s", h.inputs.AbiPath)
	}

	owners := make(map[string]string)
	for _, abiFile := range files {
		contractName := strings.TrimSuffix(filepath.Base(abiFile), ".abi")
		packageName := contractNameToPackage(contractName)
		if owner, exists := owners[packageName]; exists {
			return nil, fmt.Errorf("package name collision: %s and %s would both generate package '%s' (contracts are converted to snake_case for package names). Please rename one of your contract files to avoid this conflict", owner, contractName, packageName)
		}
		owners[packageName] = contractName
	}

	jobs := make([]binding, 0, len(files))
	for _, abiFile := range files {
		job, err := h.plan("", abiFile, "", "")
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// plan loads one contract and places its binding in a package named after
// the Go type unless pkg is set.
func (h *handler) plan(combinedJSON, abiFile, typeName, pkg string) (binding, error) {
	opts, err := evm.LoadOptions(combinedJSON, abiFile, typeName)
	if err != nil {
		return binding{}, err
	}
	if pkg == "" {
		pkg = contractNameToPackage(opts.Type)
	}
	opts.Package = pkg
	return binding{
		opts:    opts,
		outFile: filepath.Join(h.inputs.OutPath, pkg, opts.Type+".go"),
	}, nil
}

func (h *handler) executeEvm() error {
	switch h.inputs.Language {
	case "go":
	default:
		return fmt.Errorf("unsupported language: %s", h.inputs.Language)
	}

	if err := os.MkdirAll(h.inputs.OutPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		jobs []binding
		err  error
	)
	switch {
	case h.inputs.CombinedJSON != "":
		job, planErr := h.plan(h.inputs.CombinedJSON, "", h.inputs.TypeName, h.inputs.PkgName)
		jobs, err = []binding{job}, planErr
	default:
		info, statErr := os.Stat(h.inputs.AbiPath)
		if statErr != nil {
			return fmt.Errorf("failed to access ABI path: %w", statErr)
		}
		if info.IsDir() {
			jobs, err = h.planDirectory()
		} else {
			job, planErr := h.plan("", h.inputs.AbiPath, h.inputs.TypeName, h.inputs.PkgName)
			jobs, err = []binding{job}, planErr
		}
	}
	if err != nil {
		return err
	}

	for _, job := range jobs {
		h.log.Debug().
			Str("source", job.opts.Source).
			Str("contract", job.opts.Contract).
			Str("package", job.opts.Package).
			Str("output", job.outFile).
			Msg("Generating binding")

		if err := evm.WriteBindings(job.opts, job.outFile); err != nil {
			return fmt.Errorf("failed to generate bindings for %s: %w", job.opts.Contract, err)
		}
		ui.Success(fmt.Sprintf("%s -> %s", job.opts.Type, job.outFile))
	}

	if h.inputs.SkipDeps {
		ui.Dim("Skipping dependencies, run " + ui.RenderCommand("go get "+constants.RuntimeModule) + " before building")
		return nil
	}
	return h.installRuntime()
}

// installRuntime adds the contract runtime the bindings import to the project module.
func (h *handler) installRuntime() error {
	module := constants.RuntimeModule + "@" + runtimeVersion(version.Version)
	ui.Command("go get " + module)
	if err := h.run(h.inputs.ProjectRoot, "go", "get", module); err != nil {
		return err
	}
	ui.Command("go mod tidy")
	return h.run(h.inputs.ProjectRoot, "go", "mod", "tidy")
}

// runtimeVersion pins the runtime to the CLI release, development builds track latest.
func runtimeVersion(cliVersion string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(cliVersion), "version "))
	if err != nil {
		return "latest"
	}
	return "v" + v.String()
}
