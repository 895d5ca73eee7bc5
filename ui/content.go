package ui

const rootTmpl = `<!DOCTYPE html>
<html>
  <head>
    <title>Sorting Visualizer</title>
    <meta charset="utf-8">
    <style>
    body {
      font-family: HelveticaNeue-Light,Arial,sans-serif;
      color: #444;
      margin: 0 auto;
      max-width: 960px;
      padding: 20px;
    }
    #ctrl { margin: 20px 0; }
    #ctrl select, #ctrl input, #ctrl button { font-size: 14px; margin-right: 8px; }
    #bars, #aux {
      display: flex;
      align-items: flex-end;
      gap: 2px;
      border-bottom: 1px solid #ccc;
    }
    #bars { height: 300px; }
    #aux { height: 80px; margin-top: 20px; }
    .bar { flex: 1; background-color: #7aa6c2; }
    .bar.cur { background-color: #e0a030; }
    .bar.pivot { background-color: #c0504d; }
    #aux .bar { background-color: #9bbb59; }
    #stats { margin-top: 10px; font-size: 14px; }
    #info { margin-top: 20px; font-size: 14px; color: #666; }
    #error { margin-top: 10px; font-size: 14px; color: #c0504d; }
    </style>
  </head>
  <body>
    <h1>Sorting Visualizer</h1>
    <div id="ctrl">
      <select id="algorithm">
        {{range .Algorithms}}
        <option value="{{.Name}}"{{if eq .Name $.Default}} selected{{end}}>{{.Title}}</option>
        {{end}}
      </select>
      <input id="size" type="number" min="0" max="{{.MaxArraySize}}" value="{{.RandomSize}}">
      <button id="generate">generate</button>
      <button id="sort">sort</button>
      <button id="pause" disabled>pause</button>
      <button id="reset" disabled>reset</button>
      <label>speed <input id="speed" type="range" min="1" max="100" value="50"></label>
    </div>
    <div id="error" hidden></div>
    <div id="bars"></div>
    <div id="aux"></div>
    <div id="stats">comparisons: <span id="comparisons">0</span> swaps: <span id="swaps">0</span></div>
    <div id="info">
      {{range .Algorithms}}
      <div class="alg" data-name="{{.Name}}" hidden>
        <strong>{{.Title}}</strong> time {{.TimeComplexity}}, space {{.SpaceComplexity}}, best {{.BestCase}}.
        {{.Description}}
      </div>
      {{end}}
    </div>
    <script>
    (function() {
      var array = [], steps = [], pos = 0, timer = null;
      var $ = function(id) { return document.getElementById(id); };

      function draw(el, values, cur, pivot) {
        var max = Math.max.apply(null, values.map(Math.abs).concat([1]));
        el.innerHTML = '';
        values.forEach(function(v, i) {
          var b = document.createElement('div');
          b.className = 'bar' + (cur.indexOf(i) >= 0 ? ' cur' : '') + (i === pivot ? ' pivot' : '');
          b.style.height = (100 * Math.abs(v) / max) + '%';
          b.title = v;
          el.appendChild(b);
        });
      }

      function show(step) {
        draw($('bars'), step.array, step.current_indices, step.pivot_index);
        draw($('aux'), step.auxiliary || [], [], null);
        $('comparisons').textContent = step.comparisons;
        $('swaps').textContent = step.swaps;
      }

      function describe() {
        var name = $('algorithm').value;
        document.querySelectorAll('.alg').forEach(function(el) {
          el.hidden = el.dataset.name !== name;
        });
      }

      function fail(msg) {
        $('error').textContent = msg;
        $('error').hidden = false;
      }

      // call resolves with the decoded body of a 2xx response and rejects
      // with the server's error message otherwise.
      function call(url, opts) {
        $('error').hidden = true;
        return fetch(url, opts).then(function(r) {
          return r.json().catch(function() { return {}; }).then(function(body) {
            if (!r.ok) {
              throw new Error(body.error || r.status + ' ' + r.statusText);
            }
            return body;
          });
        });
      }

      // delay maps the speed slider (1 slow, 100 fast) to ms per step.
      function delay() {
        return 505 - 5 * Number($('speed').value);
      }

      function stop() {
        clearTimeout(timer);
        timer = null;
        $('pause').textContent = 'pause';
      }

      function tick() {
        if (pos >= steps.length) {
          stop();
          $('pause').disabled = true;
          return;
        }
        show(steps[pos++]);
        timer = setTimeout(tick, delay());
      }

      function initial() {
        show({array: array, current_indices: [], comparisons: 0, swaps: 0});
      }

      function reset() {
        stop();
        steps = [];
        pos = 0;
        $('pause').disabled = true;
        $('reset').disabled = true;
        initial();
      }

      function pause() {
        if (timer !== null) {
          stop();
          $('pause').textContent = 'resume';
        } else if (pos < steps.length) {
          $('pause').textContent = 'pause';
          tick();
        }
      }

      function generate() {
        reset();
        call('{{.RandomPath}}?size=' + encodeURIComponent($('size').value))
          .then(function(res) {
            array = res.array || [];
            initial();
          })
          .catch(function(err) { fail(err.message); });
      }

      function sort() {
        reset();
        call('{{.SortPath}}', {
          method: 'POST',
          headers: {'Content-Type': 'application/json'},
          body: JSON.stringify({array: array, algorithm: $('algorithm').value})
        }).then(function(res) {
            steps = res;
            $('pause').disabled = false;
            $('reset').disabled = false;
            tick();
          })
          .catch(function(err) { fail(err.message); });
      }

      $('generate').onclick = generate;
      $('sort').onclick = sort;
      $('pause').onclick = pause;
      $('reset').onclick = reset;
      $('algorithm').onchange = describe;
      describe();
      generate();
    })();
    </script>
  </body>
</html>
`
