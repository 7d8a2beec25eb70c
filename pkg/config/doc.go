/*
Package config manages patch configuration parsing and validation for patchrc.

	            +-------------+
	            |   Config    |
	            | (Patches)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Loads patch definitions from YAML, JSON or HCL files
- Validates definitions before anything touches the filesystem
- Compiles definitions into an executable patch set

🔄 Flow:
1. Reads the configuration file, picking the parser by extension
2. Rejects unknown fields and structurally invalid definitions
3. Compiles match specs (regexes fail here, not mid-run)
4. Resolves the dependency DAG so cycles surface up front

⚡ Key Responsibilities:
- Format abstraction (.patchrc tries YAML then HCL)
- Unique id / required field / mutually exclusive match validation
- Resolving a relative root against the config file's directory

📝 Design Philosophy:
Every configuration-time error must surface before the engine reads a single
target file. A malformed patch set should never leave a tree half-patched, so
BuildPatchSet compiles regexes and resolves the dependency order eagerly.

🔍 Example:

	cfg, err := config.LoadConfig(ctx, ".patchrc.yaml")
	if err != nil {
		return err
	}
	ps, err := cfg.BuildPatchSet()
	if err != nil {
		return err
	}
*/
package config
