package snapshot

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Hostname:      "triage-box",
		OSVersion:     "Ubuntu 24.04.1 LTS",
		KernelVersion: "6.8.0-45-generic",
		Uptime:        "3d 4h 12m",
		CPUName:       "AMD Ryzen 7 7840U",
		CPUUsage:      37.5,
		CPUCores:      16,
		UsedMemory:    4096,
		TotalMemory:   8192,
		UsedSwap:      0,
		TotalSwap:     2048,
		DiskInfo: []DiskStat{
			{Name: "/dev/nvme0n1p2", MountPoint: "/", TotalSpace: 500_000_000_000, AvailableSpace: 120_000_000_000},
			{Name: "/dev/nvme0n1p1", MountPoint: "/boot/efi", TotalSpace: 536_870_912, AvailableSpace: 500_000_000},
		},
		NetworkInfo: []NetworkStat{
			{Interface: "eth0", Received: 100, Transmitted: 50},
			{Interface: "wlan0", Received: 10, Transmitted: 5},
		},
		TopProcesses: []ProcessStat{
			{Name: "firefox", PID: 4242, CPUUsage: 12.5, Memory: 734003200, Status: "Run"},
			{Name: "sshd", PID: 812, CPUUsage: 0.25, Memory: 8388608, Status: "Sleep"},
		},
	}
}
