package scaffold

import "encoding/json"

// compilerOptions mirrors the subset of tsconfig compilerOptions we emit.
// Field order is the order keys appear in the written file.
type compilerOptions struct {
	Composite                    bool     `json:"composite,omitempty"`
	Target                       string   `json:"target,omitempty"`
	UseDefineForClassFields      bool     `json:"useDefineForClassFields,omitempty"`
	Lib                          []string `json:"lib,omitempty"`
	Module                       string   `json:"module,omitempty"`
	SkipLibCheck                 bool     `json:"skipLibCheck,omitempty"`
	ModuleResolution             string   `json:"moduleResolution,omitempty"`
	AllowImportingTsExtensions   bool     `json:"allowImportingTsExtensions,omitempty"`
	AllowSyntheticDefaultImports bool     `json:"allowSyntheticDefaultImports,omitempty"`
	AllowJS                      bool     `json:"allowJs,omitempty"`
	ResolveJSONModule            bool     `json:"resolveJsonModule,omitempty"`
	IsolatedModules              bool     `json:"isolatedModules,omitempty"`
	NoEmit                       bool     `json:"noEmit,omitempty"`
	JSX                          string   `json:"jsx,omitempty"`
	Types                        []string `json:"types,omitempty"`
	Strict                       bool     `json:"strict,omitempty"`
	NoUnusedLocals               bool     `json:"noUnusedLocals,omitempty"`
	NoUnusedParameters           bool     `json:"noUnusedParameters,omitempty"`
	NoFallthroughCasesInSwitch   bool     `json:"noFallthroughCasesInSwitch,omitempty"`
}

type tsReference struct {
	Path string `json:"path"`
}

type tsConfig struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	References      []tsReference   `json:"references,omitempty"`
}

func appTSConfig() tsConfig {
	return tsConfig{
		CompilerOptions: compilerOptions{
			Target:                     "ES2020",
			UseDefineForClassFields:    true,
			Lib:                        []string{"ES2020", "DOM", "DOM.Iterable"},
			Module:                     "ESNext",
			SkipLibCheck:               true,
			ModuleResolution:           "bundler",
			AllowImportingTsExtensions: true,
			ResolveJSONModule:          true,
			IsolatedModules:            true,
			NoEmit:                     true,
			JSX:                        "react-jsx",
			Strict:                     true,
			NoUnusedLocals:             true,
			NoUnusedParameters:         true,
			NoFallthroughCasesInSwitch: true,
		},
		Include:    []string{"src"},
		References: []tsReference{{Path: "./tsconfig.node.json"}},
	}
}

func appTSConfigNode() tsConfig {
	return tsConfig{
		CompilerOptions: compilerOptions{
			Composite:                    true,
			SkipLibCheck:                 true,
			Module:                       "ESNext",
			ModuleResolution:             "bundler",
			AllowSyntheticDefaultImports: true,
		},
		Include: []string{"vite.config.ts"},
	}
}

// extensionTSConfig type-checks the popup and options pages. The shared
// modules and scripts stay plain JavaScript, hence allowJs.
func extensionTSConfig() tsConfig {
	return tsConfig{
		CompilerOptions: compilerOptions{
			Target:                     "ES2020",
			UseDefineForClassFields:    true,
			Lib:                        []string{"ES2020", "DOM", "DOM.Iterable"},
			Module:                     "ESNext",
			SkipLibCheck:               true,
			ModuleResolution:           "bundler",
			AllowImportingTsExtensions: true,
			AllowJS:                    true,
			ResolveJSONModule:          true,
			IsolatedModules:            true,
			NoEmit:                     true,
			JSX:                        "react-jsx",
			Types:                      []string{"chrome"},
			Strict:                     true,
			NoFallthroughCasesInSwitch: true,
		},
		Include: []string{"src"},
	}
}

// marshalConfig renders cfg as two-space indented JSON.
func marshalConfig(cfg tsConfig) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
