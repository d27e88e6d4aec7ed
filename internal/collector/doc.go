// Package collector produces system snapshots for the local host.
//
// A single batched shell command gathers every metric in one exec. Sections of
// the output are separated by a line containing "---" and parsed independently,
// so a section that fails to parse degrades to zero values instead of failing
// the whole snapshot:
//
//	Linux:  /proc/stat, /proc/meminfo, /proc/net/dev, df, ps, hostname,
//	        uname -r, /etc/os-release, /proc/uptime, /proc/cpuinfo
//	macOS:  top, vm_stat + sysctl, vm.swapusage, netstat -ib, df, ps,
//	        hostname, uname -r, sw_vers, kern.boottime, cpu brand + ncpu
//
// CPU usage on Linux is computed from the jiffies delta between two
// collections. The first collection reports the average since boot.
package collector
