package typos

// builtinTable is the static typo database, initialised once and reused
// forever. Order matters only for display; lookup goes through maps built
// by the match engine.
var builtinTable = []Entry{
	// Version control
	{"gti", "git"},
	{"gt", "git"},
	{"gut", "git"},
	{"igt", "git"},
	{"tig status", "git status"},
	{"git stauts", "git status"},
	{"git staus", "git status"},
	{"git sttus", "git status"},
	{"git comit", "git commit"},
	{"git commti", "git commit"},
	{"git cmomit", "git commit"},
	{"git psuh", "git push"},
	{"git puhs", "git push"},
	{"git pussh", "git push"},
	{"git pll", "git pull"},
	{"git pul", "git pull"},
	{"git pulll", "git pull"},
	{"git cloen", "git clone"},
	{"git clnoe", "git clone"},
	{"git chekout", "git checkout"},
	{"git checout", "git checkout"},
	{"git checkotu", "git checkout"},
	{"git branhc", "git branch"},
	{"git brnach", "git branch"},
	{"git merg", "git merge"},
	{"git megre", "git merge"},
	{"git stsh", "git stash"},
	{"git satsh", "git stash"},
	{"git fethc", "git fetch"},
	{"git fecth", "git fetch"},
	{"git rebse", "git rebase"},
	{"git lgo", "git log"},
	{"git dif", "git diff"},
	{"git idff", "git diff"},
	{"git dad", "git add"},
	{"git ad", "git add"},
	{"got", "git"},

	// Containers / orchestration
	{"doker", "docker"},
	{"docekr", "docker"},
	{"dokcer", "docker"},
	{"dcoker", "docker"},
	{"docker-compse", "docker-compose"},
	{"docker-comopse", "docker-compose"},
	{"docker ps-a", "docker ps -a"},
	{"docker imgaes", "docker images"},
	{"docker imags", "docker images"},
	{"kubctl", "kubectl"},
	{"kubectle", "kubectl"},
	{"kubetcl", "kubectl"},
	{"kuebctl", "kubectl"},
	{"kubectl gte", "kubectl get"},
	{"kubectl descrbe", "kubectl describe"},
	{"helm isntall", "helm install"},

	// Package managers
	{"npm isntall", "npm install"},
	{"npm intall", "npm install"},
	{"npm instal", "npm install"},
	{"npm onstall", "npm install"},
	{"npm isntal", "npm install"},
	{"npn", "npm"},
	{"nmp", "npm"},
	{"yran", "yarn"},
	{"yarn intsall", "yarn install"},
	{"pip isntall", "pip install"},
	{"pip intall", "pip install"},
	{"pip3 isntall", "pip3 install"},
	{"pup", "pip"},
	{"crago", "cargo"},
	{"cagro", "cargo"},
	{"cargo biuld", "cargo build"},
	{"brwe", "brew"},
	{"brew isntall", "brew install"},
	{"atp", "apt"},
	{"apt-gte", "apt-get"},
	{"apt isntall", "apt install"},
	{"sudo atp", "sudo apt"},
	{"suod", "sudo"},
	{"sduo", "sudo"},
	{"sodu", "sudo"},

	// Go toolchain
	{"go biuld", "go build"},
	{"go buidl", "go build"},
	{"go tset", "go test"},
	{"go rnu", "go run"},
	{"go mdo", "go mod"},

	// Shell / file operations
	{"sl", "ls"},
	{"ls-la", "ls -la"},
	{"l s", "ls"},
	{"lls", "ls"},
	{"cd..", "cd .."},
	{"cd-", "cd -"},
	{"cta", "cat"},
	{"act", "cat"},
	{"grpe", "grep"},
	{"gerp", "grep"},
	{"grep-r", "grep -r"},
	{"mkdri", "mkdir"},
	{"mdkir", "mkdir"},
	{"mkdr", "mkdir"},
	{"tuoch", "touch"},
	{"touhc", "touch"},
	{"remove", "rm"},
	{"rm-rf", "rm -rf"},
	{"mroe", "more"},
	{"lses", "less"},
	{"tial", "tail"},
	{"haed", "head"},
	{"ehco", "echo"},
	{"chomd", "chmod"},
	{"chmdo", "chmod"},
	{"chwon", "chown"},
	{"tra", "tar"},
	{"tar -xfv", "tar -xvf"},
	{"unzpi", "unzip"},
	{"fnid", "find"},
	{"fidn", "find"},
	{"whcih", "which"},
	{"wich", "which"},

	// System
	{"pign", "ping"},
	{"pnig", "ping"},
	{"crul", "curl"},
	{"culr", "curl"},
	{"wgte", "wget"},
	{"shh", "ssh"},
	{"shs", "ssh"},
	{"spc", "scp"},
	{"systemclt", "systemctl"},
	{"systemtcl", "systemctl"},
	{"sytemctl", "systemctl"},
	{"systemctl stauts", "systemctl status"},
	{"systemctl strat", "systemctl start"},
	{"jounralctl", "journalctl"},
	{"kil", "kill"},
	{"kilall", "killall"},
	{"pss", "ps"},
	{"ps-ef", "ps -ef"},
	{"tpo", "top"},
	{"hotp", "htop"},
	{"fre", "free"},
	{"df-h", "df -h"},
	{"du-sh", "du -sh"},
	{"monut", "mount"},
	{"ifconfg", "ifconfig"},
	{"netsat", "netstat"},

	// Editors / tools
	{"vmi", "vim"},
	{"ivm", "vim"},
	{"vi m", "vim"},
	{"nvmi", "nvim"},
	{"nnao", "nano"},
	{"emcas", "emacs"},
	{"mkae", "make"},
	{"maek", "make"},
	{"amke", "make"},
	{"cmkae", "cmake"},
	{"pyhton", "python"},
	{"pytohn", "python"},
	{"phyton", "python"},
	{"pyton", "python"},
	{"pyhton3", "python3"},
	{"ndoe", "node"},
	{"noed", "node"},
	{"jaav", "java"},
	{"rbuy", "ruby"},
	{"tmxu", "tmux"},
	{"tmuxx", "tmux"},
	{"scren", "screen"},
	{"opnessl", "openssl"},

	// Cloud / infra
	{"terrform", "terraform"},
	{"terafrom", "terraform"},
	{"teraform", "terraform"},
	{"terraform aply", "terraform apply"},
	{"terraform palne", "terraform plan"},
	{"asw", "aws"},
	{"gclodu", "gcloud"},
	{"ansibel", "ansible"},

	// Database clients
	{"myslq", "mysql"},
	{"mysq", "mysql"},
	{"pslq", "psql"},
	{"pgsql", "psql"},
	{"redis-clli", "redis-cli"},
	{"sqlite", "sqlite3"},

	// Misc
	{"claer", "clear"},
	{"clera", "clear"},
	{"cls", "clear"},
	{"exot", "exit"},
	{"eixt", "exit"},
	{"exti", "exit"},
	{"hisotry", "history"},
	{"histroy", "history"},
	{"jqo", "jq"},
	{"fzff", "fzf"},
}

// canonicalCommands is the fuzzy-target corpus: known-good tool names and
// a handful of very common subcommand words. Single tokens only.
var canonicalCommands = []string{
	// Version control
	"git", "svn", "hg", "fossil",
	// Containers / orchestration
	"docker", "podman", "kubectl", "helm", "k9s", "k3s",
	"docker-compose", "skaffold", "kustomize",
	// Cloud CLIs
	"aws", "az", "gcloud", "terraform", "pulumi", "ansible",
	// Package managers
	"npm", "yarn", "pnpm", "npx", "pip", "pip3", "conda",
	"gem", "cargo", "go", "mvn", "gradle", "composer",
	"apt", "apt-get", "yum", "dnf", "pacman", "brew", "choco",
	// Runtimes / interpreters
	"node", "python", "python3", "ruby", "java", "php",
	"perl", "lua", "dart", "swift", "rustc", "javac",
	// Shell / file operations
	"ls", "cat", "echo", "head", "tail", "less", "more",
	"grep", "rg", "find", "fd", "sed", "awk",
	"cut", "sort", "uniq", "wc", "diff", "patch",
	"cp", "mv", "rm", "mkdir", "rmdir", "touch", "ln",
	"chmod", "chown", "chgrp", "stat", "file", "which",
	"tar", "zip", "unzip", "gzip", "gunzip", "bzip2",
	// System
	"ps", "top", "htop", "kill", "killall", "systemctl",
	"service", "journalctl", "lsof", "netstat", "ss", "ip",
	"ifconfig", "ping", "curl", "wget", "ssh", "scp", "rsync",
	"mount", "umount", "df", "du", "free", "sudo",
	// Editors / tools
	"vim", "nvim", "nano", "emacs", "code", "subl",
	"make", "cmake", "gcc", "g++", "clang",
	"gdb", "strace", "valgrind",
	// Misc dev
	"jq", "yq", "fzf", "bat", "btop", "exa", "lsd",
	"tmux", "screen", "nohup", "crontab",
	"openssl", "gpg", "pass", "clear", "exit", "history",
	// Database clients
	"mysql", "psql", "mongo", "redis-cli", "sqlite3",
	// This tool
	"wtf",
}
