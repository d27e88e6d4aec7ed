package collector

const linuxProcStat = `cpu  1000 0 500 8000 500 0 0 0 0 0
cpu0 500 0 250 4000 250 0 0 0 0 0
cpu1 500 0 250 4000 250 0 0 0 0 0
intr 123456
ctxt 789`

const linuxMeminfo = `MemTotal:        8000000 kB
MemFree:         1000000 kB
MemAvailable:    3000000 kB
Buffers:          200000 kB
Cached:          1500000 kB
SwapCached:            0 kB
SwapTotal:       2000000 kB
SwapFree:        1500000 kB`

const linuxNetDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:    5000      50    0    0    0     0          0         0     5000      50    0    0    0     0       0          0
  eth0: 1000000    1000    0    0    0     0          0         0   500000     800    0    0    0     0       0          0`

const linuxDf = `Filesystem     1024-blocks     Used Available Capacity Mounted on
/dev/sda1         102400    51200     51200      50% /
tmpfs              16384        0     16384       0% /dev/shm
/dev/sdb1         204800   102400    102400      50% /mnt/My Data`

const linuxPs = `USER         PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND
root           1  0.1  0.1 169000 13000 ?        Ss   Jan01   0:05 /sbin/init splash
alice       4242 55.5  2.0 900000 204800 ?       Rl   10:00  12:34 /usr/lib/firefox/firefox -contentproc
root          17  0.0  0.0      0     0 ?        I<   Jan01   0:00 [kworker/0:1-events]
bob         9001 12.5  1.0 400000 102400 pts/0   S+   10:05   1:00 python3 train.py`

const linuxOSRelease = `NAME="Ubuntu"
VERSION="22.04.3 LTS (Jammy Jellyfish)"
ID=ubuntu
PRETTY_NAME="Ubuntu 22.04.3 LTS"`

const darwinTop = `Processes: 450 total, 2 running, 448 sleeping, 2345 threads
2025/01/08 10:30:45
Load Avg: 2.50, 3.25, 2.75
CPU usage: 15.79% user, 10.52% sys, 73.69% idle
PhysMem: 16G used (2500M wired), 500M unused.`

const darwinVMStat = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               10000.
Pages active:                            200000.
Pages inactive:                          150000.
Pages speculative:                        5000.
Pages throttled:                              0.
Pages wired down:                        100000.
Pages purgeable:                           2000.
Pages occupied by compressor:             45000.
hw.memsize: 17179869184`

const darwinNetstat = `Name       Mtu   Network       Address            Ipkts Ierrs     Ibytes    Opkts Oerrs     Obytes  Coll
lo0        16384 <Link#1>                         12000     0    3000000    12000     0    3000000     0
lo0        16384 127           localhost          12000     -    3000000    12000     -    3000000     -
en0        1500  <Link#6>    aa:bb:cc:dd:ee:ff   500000     0  700000000   300000     0   40000000     0
en0        1500  192.168.1     192.168.1.20      400000     -  600000000   250000     -   35000000     -`

const darwinDf = `Filesystem     1024-blocks      Used Available Capacity  Mounted on
/dev/disk3s1s1   482797652  10000000 200000000     5%    /
devfs                  200       200         0   100%    /dev
map auto_home            0         0         0   100%    /System/Volumes/Data/home`

const darwinPs = `USER               PID  %CPU %MEM      VSZ    RSS   TT  STAT STARTED      TIME COMMAND
alice              812  35.0  3.1 412345678 512000   ??  R    9:00AM   10:00.00 /Applications/Slack.app/Contents/MacOS/Slack
_windowserver      150  20.0  1.0 410000000 256000   ??  Ss   8:00AM   50:00.00 /System/Library/PrivateFrameworks/SkyLight.framework/Resources/WindowServer -daemon`

const darwinSwVers = `ProductName:		macOS
ProductVersion:		14.2.1
BuildVersion:		23C71`
